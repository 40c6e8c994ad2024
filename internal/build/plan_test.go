package build_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taggen/internal/build"
	"taggen/internal/domain/content"
	domainerr "taggen/internal/domain/errors"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"PHP", "php"},
		{"OOP", "oop"},
		{"Web Scraping", "web-scraping"},
		{"already-slugged", "already-slugged"},
		{"C++", "c++"},
		{"Two  Spaces", "two--spaces"},
		{"ReactPHP", "reactphp"},
	}

	for _, tc := range tests {
		t.Run(tc.label, func(t *testing.T) {
			assert.Equal(t, tc.want, build.Slugify(tc.label))
		})
	}
}

func TestAggregate(t *testing.T) {
	posts := []content.PostTags{
		{Path: "b.md", Labels: []string{"Laravel", "Testing"}},
		{Path: "a.md", Labels: []string{"PHP", "Laravel"}},
	}

	tags := build.Aggregate(posts)
	require.Len(t, tags, 3)

	// labels come back sorted
	assert.Equal(t, "Laravel", tags[0].Label)
	assert.Equal(t, "PHP", tags[1].Label)
	assert.Equal(t, "Testing", tags[2].Label)

	laravel := tags[0]
	assert.Equal(t, "laravel", laravel.Slug)
	assert.Equal(t, 2, laravel.Count)
	assert.Equal(t, []string{"a.md", "b.md"}, laravel.Posts, "posts sorted regardless of scan order")

	php := tags[1]
	assert.Equal(t, 1, php.Count)
	assert.Equal(t, []string{"a.md"}, php.Posts)
}

func TestAggregate_Empty(t *testing.T) {
	assert.Empty(t, build.Aggregate(nil))
}

func TestAggregate_CaseVariantsStayDistinct(t *testing.T) {
	posts := []content.PostTags{
		{Path: "a.md", Labels: []string{"PHP"}},
		{Path: "b.md", Labels: []string{"php"}},
	}

	tags := build.Aggregate(posts)
	require.Len(t, tags, 2)
	assert.Equal(t, "PHP", tags[0].Label)
	assert.Equal(t, "php", tags[1].Label)
	assert.Equal(t, tags[0].Slug, tags[1].Slug, "distinct labels, same slug")
}

func TestPlan(t *testing.T) {
	t.Run("one page per tag", func(t *testing.T) {
		tags := build.Aggregate([]content.PostTags{
			{Path: "a.md", Labels: []string{"PHP", "Web Scraping"}},
		})

		pages, err := build.Plan(tags, ".md")
		require.NoError(t, err)
		require.Len(t, pages, 2)
		assert.Equal(t, build.Page{Label: "PHP", Slug: "php", Filename: "php.md"}, pages[0])
		assert.Equal(t, build.Page{Label: "Web Scraping", Slug: "web-scraping", Filename: "web-scraping.md"}, pages[1])
	})

	t.Run("extension is honored", func(t *testing.T) {
		tags := build.Aggregate([]content.PostTags{{Path: "a.md", Labels: []string{"Go"}}})

		pages, err := build.Plan(tags, ".html")
		require.NoError(t, err)
		assert.Equal(t, "go.html", pages[0].Filename)
	})

	t.Run("case collision fails the plan", func(t *testing.T) {
		tags := build.Aggregate([]content.PostTags{
			{Path: "a.md", Labels: []string{"PHP"}},
			{Path: "b.md", Labels: []string{"php"}},
		})

		pages, err := build.Plan(tags, ".md")
		require.Error(t, err)
		assert.Nil(t, pages)
		assert.True(t, errors.Is(err, domainerr.ErrCollision))
		assert.Contains(t, err.Error(), "php.md")
		assert.Contains(t, err.Error(), `"PHP"`)
		assert.Contains(t, err.Error(), `"php"`)
	})

	t.Run("space vs hyphen collision", func(t *testing.T) {
		tags := build.Aggregate([]content.PostTags{
			{Path: "a.md", Labels: []string{"Web Scraping"}},
			{Path: "b.md", Labels: []string{"Web-Scraping"}},
		})

		_, err := build.Plan(tags, ".md")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerr.ErrCollision))
	})

	t.Run("every colliding group is reported", func(t *testing.T) {
		tags := build.Aggregate([]content.PostTags{
			{Path: "a.md", Labels: []string{"PHP", "Go"}},
			{Path: "b.md", Labels: []string{"php", "GO"}},
		})

		_, err := build.Plan(tags, ".md")
		require.Error(t, err)

		var ce domainerr.CollisionError
		require.True(t, errors.As(err, &ce))
		assert.Len(t, ce.Groups, 2)
	})

	t.Run("empty plan is fine", func(t *testing.T) {
		pages, err := build.Plan(nil, ".md")
		require.NoError(t, err)
		assert.Empty(t, pages)
	})
}
