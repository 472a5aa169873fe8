package models

import "time"

// Singapore (UTC+8, no DST) is the zone every date in the site is shown in.
var Singapore = time.FixedZone("SGT", 8*3600)
