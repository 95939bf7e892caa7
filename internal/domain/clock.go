package domain

import "time"

// Clock is the injectable time source. Production code uses time.Now,
// tests substitute a fixed or stepping clock to drive expiry windows.
type Clock func() time.Time
