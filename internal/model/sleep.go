package model

import "time"

// SleepSession is one night of sleep as logged by the user.
// DurationMin and Efficiency are derived at logging time and stored so that
// analysis queries stay a plain read.
type SleepSession struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	BedTime     time.Time `json:"bed_time"`
	WakeTime    time.Time `json:"wake_time"`
	Quality     int       `json:"quality"`
	Awakenings  int       `json:"awakenings"`
	DurationMin int       `json:"duration_min"`
	Efficiency  float64   `json:"efficiency"`
}

// SleepAnalysis is the aggregate view over a window of sessions.
// A window with no sessions yields the zero value with Records == 0.
type SleepAnalysis struct {
	Records          int     `json:"records"`
	AvgDurationMin   float64 `json:"avg_duration_min"`
	AvgQuality       float64 `json:"avg_quality"`
	AvgEfficiency    float64 `json:"avg_efficiency"`
	SleepDebtMin     int     `json:"sleep_debt_min"`
	ConsistencyScore int     `json:"consistency_score"`
}
