package models

// GeoPoint is a (longitude, latitude) pair. Persisted stores keep the same
// ordering.
type GeoPoint struct {
	Longitude float64 `json:"longitude" db:"longitude"`
	Latitude  float64 `json:"latitude" db:"latitude"`
}

// Valid reports whether the point is within WGS84 bounds.
func (p GeoPoint) Valid() bool {
	return p.Longitude >= -180 && p.Longitude <= 180 &&
		p.Latitude >= -90 && p.Latitude <= 90
}

// Address is the human-readable counterpart of a GeoPoint.
type Address struct {
	Street  string `json:"street,omitempty" db:"street"`
	City    string `json:"city" db:"city"`
	State   string `json:"state" db:"state"`
	ZipCode string `json:"zip_code,omitempty" db:"zip_code"`
	Country string `json:"country,omitempty" db:"country"`
}

// NearbyEntity is a raw proximity-index hit: an entity id with its point and
// great-circle distance (km) from the query center. Ranking beyond distance
// is the caller's responsibility.
type NearbyEntity struct {
	ID       string   `json:"id"`
	Point    GeoPoint `json:"point"`
	Distance float64  `json:"distance_km"`
}
