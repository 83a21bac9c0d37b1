package catalog_test

import "masthead/pkg/catalog"

func articleInput(a *catalog.Author, m *catalog.Magazine, title string) catalog.ArticleInput {
	return catalog.ArticleInput{AuthorID: a.ID, MagazineID: m.ID, Title: title}
}
