package media

type ImageRequest struct {
	Ref         string `json:"ref" binding:"required,max=500"`
	Title       string `json:"title" binding:"max=200"`
	Description string `json:"description" binding:"max=2000"`
	SortOrder   int    `json:"sort_order" binding:"gte=0"`
}

type DocumentRequest struct {
	Title    string `json:"title" binding:"required,max=200"`
	Ref      string `json:"ref" binding:"required,max=500"`
	FileSize int64  `json:"file_size" binding:"gte=0"`
}
