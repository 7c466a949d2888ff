package sport

// Schedule is the daily operating window of a sport. An end of "00:00"
// means the window runs up to midnight.
type Schedule struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// MaintenanceWindow blocks a recurring weekday interval, e.g. court
// cleaning every Monday 15:00-16:00.
type MaintenanceWindow struct {
	Day   string `json:"day"`
	Start string `json:"start"`
	End   string `json:"end"`
}

type Sport struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Courts      int                 `json:"courts"`
	Price       float64             `json:"price"`
	Duration    int                 `json:"duration"` // session length in minutes
	Enabled     bool                `json:"enabled"`
	Schedule    Schedule            `json:"schedule"`
	Maintenance []MaintenanceWindow `json:"maintenance"`
}
