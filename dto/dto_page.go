package dto

type ListPostsResp struct {
	Posts      []PostResp `json:"posts"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
	TotalPosts int        `json:"totalPosts"`
	TotalPages int        `json:"totalPages"`
}
