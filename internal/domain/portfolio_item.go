package domain

type PortfolioItem struct {
	ID            int64    `json:"id"`
	ProfileID     int64    `json:"profile_id"`
	Title         string   `json:"title"`
	Description   *string  `json:"description"`
	URL           *string  `json:"url"`
	ScreenshotURL *string  `json:"screenshot_url"`
	Skills        []string `json:"skills"`
	DisplayOrder  int32    `json:"display_order"`
}

func (e PortfolioItem) EntityID() int64 { return e.ID }
