package model

const (
	MarkerStandard = "standard"
	MarkerQuest    = "quest"
	MarkerDanger   = "danger"
)

// MarkerKinds lists the map marker kinds a location may use.
var MarkerKinds = []string{MarkerStandard, MarkerQuest, MarkerDanger}

// Location is a point of interest inside a region. X and Y are map coordinates and
// are nil when the location hasn't been placed.
type Location struct {
	ID           int    `json:"id"`
	Name         string `json:"name" gorm:"not null"`
	Description  string `json:"description"`
	RegionID     int    `json:"regionId" gorm:"not null;index"`
	ImageURL     string `json:"imageUrl"`
	LocationType string `json:"locationType"`
	X            *int   `json:"x"`
	Y            *int   `json:"y"`
	MarkerType   string `json:"markerType"`
}

func (Location) TableName() string {
	return "locations"
}
