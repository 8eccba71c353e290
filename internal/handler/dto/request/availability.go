package request

// TimeSlotsQuery is bound from the query string of the slot listing
// endpoints. Duration is in minutes; zero means the default grid step.
type TimeSlotsQuery struct {
	Date     string `form:"date" binding:"required"`
	Duration int    `form:"duration"`
}

type FreeDesksQuery struct {
	Dates []string `form:"dates" binding:"required,min=1"`
}
