package lesson

import "time"

// animTickMsg advances the play-phase animation frame.
type animTickMsg time.Time

// recapTickMsg polls the coach service for a finished recap.
type recapTickMsg time.Time
