package dto

import "github.com/Adityakk9031/FirAgent/models"

type PageQuery struct {
	Page  int `form:"page" binding:"omitempty,min=1"`
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

func AdaptPage(query PageQuery) models.Page {
	return models.Page{Page: query.Page, Limit: query.Limit}
}

type Count struct {
	Count int `json:"count"`
}
