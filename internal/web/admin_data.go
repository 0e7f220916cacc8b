package web

type PaginationData struct {
	BasePath   string
	Page       int
	PerPage    int
	Offset     int
	Total      int
	TotalPages int
	HasPrev    bool
	HasNext    bool
	PrevPage   int
	NextPage   int
}

type AdminPlaysData struct {
	Active     []ActiveSession
	Plays      []PlaySummary
	GameFilter string
	Pagination PaginationData
	Error      string
}
