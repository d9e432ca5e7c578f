package entity

// FetchResult is the raw outcome of a single page fetch.
type FetchResult struct {
	Body           []byte
	StatusCode     int
	ElapsedSeconds float64
}
