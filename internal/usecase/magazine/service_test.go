package magazine_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"masthead/internal/domain/entity"
	"masthead/internal/infra/adapter/persistence/memory"
	artUC "masthead/internal/usecase/article"
	magUC "masthead/internal/usecase/magazine"
)

type fixture struct {
	store    *memory.Store
	svc      *magUC.Service
	articles *artUC.Service
}

func newFixture() *fixture {
	store := memory.NewStore()
	return &fixture{
		store: store,
		articles: &artUC.Service{
			Repo:         store.Articles(),
			AuthorRepo:   store.Authors(),
			MagazineRepo: store.Magazines(),
		},
		svc: &magUC.Service{
			Repo:        store.Magazines(),
			AuthorRepo:  store.Authors(),
			ArticleRepo: store.Articles(),
		},
	}
}

func (f *fixture) author(t *testing.T, name string) *entity.Author {
	t.Helper()
	a, err := entity.NewAuthor(name)
	require.NoError(t, err)
	require.NoError(t, f.store.Authors().Create(a))
	return a
}

func (f *fixture) write(t *testing.T, a *entity.Author, m *entity.Magazine, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := f.articles.Create(artUC.CreateInput{
			AuthorID:   a.ID,
			MagazineID: m.ID,
			Title:      fmt.Sprintf("%s story %d", a.Name, i+1),
		})
		require.NoError(t, err)
	}
}

func authorNames(authors []*entity.Author) []string {
	out := make([]string, 0, len(authors))
	for _, a := range authors {
		out = append(out, a.Name)
	}
	return out
}

func TestService_Create(t *testing.T) {
	f := newFixture()

	m, err := f.svc.Create("Vogue", "Fashion")
	require.NoError(t, err)
	assert.Equal(t, "Vogue", m.Name)
	assert.Equal(t, "Fashion", m.Category)

	tests := []struct {
		name      string
		magName   string
		category  string
		wantField string
	}{
		{name: "short name", magName: "V", category: "Fashion", wantField: "name"},
		{name: "long name", magName: "Seventeen Letters", category: "Fashion", wantField: "name"},
		{name: "empty category", magName: "Vogue", category: "", wantField: "category"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Create(tt.magName, tt.category)
			var ve *entity.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantField, ve.Field)
			assert.Equal(t, entity.KindRange, ve.Kind)
		})
	}

	mags, err := f.svc.List()
	require.NoError(t, err)
	assert.Len(t, mags, 1)
}

func TestService_Get_Errors(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Get(uuid.Nil)
	assert.ErrorIs(t, err, magUC.ErrInvalidMagazineID)
	_, err = f.svc.Get(uuid.New())
	assert.ErrorIs(t, err, magUC.ErrMagazineNotFound)
	_, _, err = f.svc.ArticleTitles(uuid.New())
	assert.ErrorIs(t, err, magUC.ErrMagazineNotFound)
}

func TestService_RenameAndSetCategory(t *testing.T) {
	f := newFixture()
	m, err := f.svc.Create("Vogue", "Fashion")
	require.NoError(t, err)
	jane := f.author(t, "Jane")
	f.write(t, jane, m, 1)

	renamed, err := f.svc.Rename(m.ID, "Vogue Paris")
	require.NoError(t, err)
	assert.Equal(t, "Vogue Paris", renamed.Name)

	_, err = f.svc.Rename(m.ID, "X")
	assert.ErrorIs(t, err, entity.ErrOutOfRange)
	_, err = f.svc.SetCategory(m.ID, "")
	assert.ErrorIs(t, err, entity.ErrOutOfRange)

	got, err := f.svc.Get(m.ID)
	require.NoError(t, err)
	assert.Equal(t, "Vogue Paris", got.Name)
	assert.Equal(t, "Fashion", got.Category)

	_, err = f.svc.SetCategory(m.ID, "Lifestyle")
	require.NoError(t, err)
	got, _ = f.svc.Get(m.ID)
	assert.Equal(t, "Lifestyle", got.Category)

	arts, err := f.svc.Articles(m.ID)
	require.NoError(t, err)
	assert.Len(t, arts, 1, "renaming must not affect articles")
}

func TestService_Contributors(t *testing.T) {
	f := newFixture()
	vogue, err := f.svc.Create("Vogue", "Fashion")
	require.NoError(t, err)
	jane := f.author(t, "Jane")
	john := f.author(t, "John")

	contributors, err := f.svc.Contributors(vogue.ID)
	require.NoError(t, err)
	assert.Empty(t, contributors)

	f.write(t, jane, vogue, 2)
	f.write(t, john, vogue, 1)
	f.write(t, jane, vogue, 1)

	contributors, err = f.svc.Contributors(vogue.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Jane", "John"}, authorNames(contributors))
}

func TestService_ArticleTitles(t *testing.T) {
	f := newFixture()
	gq, err := f.svc.Create("GQ", "Fashion")
	require.NoError(t, err)

	titles, ok, err := f.svc.ArticleTitles(gq.ID)
	require.NoError(t, err)
	assert.False(t, ok, "a magazine without articles has no data")
	assert.Nil(t, titles)

	jane := f.author(t, "Jane")
	f.write(t, jane, gq, 2)

	titles, ok, err = f.svc.ArticleTitles(gq.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	if diff := cmp.Diff([]string{"Jane story 1", "Jane story 2"}, titles); diff != "" {
		t.Errorf("ArticleTitles() mismatch (-want +got):\n%s", diff)
	}
}

func TestService_ContributingAuthors(t *testing.T) {
	tests := []struct {
		name   string
		counts map[string]int
		order  []string
		want   []string
		wantOK bool
	}{
		{name: "no articles", order: nil, wantOK: false},
		{name: "nobody above threshold", counts: map[string]int{"Jane": 2, "John": 1}, order: []string{"Jane", "John"}, wantOK: false},
		{name: "exactly three counts", counts: map[string]int{"Jane": 3, "John": 2}, order: []string{"Jane", "John"}, want: []string{"Jane"}, wantOK: true},
		{name: "several above threshold", counts: map[string]int{"Jane": 4, "John": 3, "Ann": 1}, order: []string{"Ann", "John", "Jane"}, want: []string{"John", "Jane"}, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			m, err := f.svc.Create("Vogue", "Fashion")
			require.NoError(t, err)
			for _, name := range tt.order {
				f.write(t, f.author(t, name), m, tt.counts[name])
			}

			authors, ok, err := f.svc.ContributingAuthors(m.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				assert.Nil(t, authors)
				return
			}
			assert.Equal(t, tt.want, authorNames(authors))
		})
	}
}

func TestService_ContributingAuthors_AfterReassignment(t *testing.T) {
	f := newFixture()
	vogue, err := f.svc.Create("Vogue", "Fashion")
	require.NoError(t, err)
	gq, err := f.svc.Create("GQ", "Fashion")
	require.NoError(t, err)
	jane := f.author(t, "Jane")
	f.write(t, jane, vogue, 3)

	_, ok, err := f.svc.ContributingAuthors(vogue.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	arts, err := f.svc.Articles(vogue.ID)
	require.NoError(t, err)
	_, err = f.articles.SetMagazine(arts[0].ID, gq.ID)
	require.NoError(t, err)

	_, ok, err = f.svc.ContributingAuthors(vogue.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestService_TopPublisher(t *testing.T) {
	f := newFixture()

	_, ok, err := f.svc.TopPublisher()
	require.NoError(t, err)
	assert.False(t, ok, "no magazines")

	vogue, err := f.svc.Create("Vogue", "Fashion")
	require.NoError(t, err)
	gq, err := f.svc.Create("GQ", "Fashion")
	require.NoError(t, err)
	wired, err := f.svc.Create("Wired", "Technology")
	require.NoError(t, err)

	_, ok, err = f.svc.TopPublisher()
	require.NoError(t, err)
	assert.False(t, ok, "magazines but no articles")

	jane := f.author(t, "Jane")
	f.write(t, jane, gq, 1)
	f.write(t, jane, wired, 1)

	top, ok, err := f.svc.TopPublisher()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, gq.ID, top.ID, "ties go to the earliest constructed magazine")

	f.write(t, jane, wired, 1)
	top, ok, err = f.svc.TopPublisher()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, wired.ID, top.ID)

	f.write(t, jane, vogue, 2)
	top, _, err = f.svc.TopPublisher()
	require.NoError(t, err)
	assert.Equal(t, vogue.ID, top.ID, "Vogue ties Wired and was constructed first")
}
