package valueobjects

// Stats is the denormalized counter block carried by every moderated
// entity. It is a cache of other tables and never written by aggregates.
type Stats struct {
	Views        int64
	Favorites    int64
	Rating       Rating
	ReviewsCount int64
}
