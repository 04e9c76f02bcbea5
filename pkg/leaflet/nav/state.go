package nav

import "fmt"

// ViewState is either the list view or the view of a single post.
// The zero value is the list view.
type ViewState struct {
	slug string
	post bool
}

// ListView returns the list view state.
func ListView() ViewState {
	return ViewState{}
}

// PostView returns the state showing the post with slug.
func PostView(slug string) ViewState {
	return ViewState{slug: slug, post: true}
}

// IsPost reports whether a post is being shown.
func (v ViewState) IsPost() bool {
	return v.post
}

// Slug returns the slug of the shown post, or "" for the list view.
func (v ViewState) Slug() string {
	return v.slug
}

func (v ViewState) String() string {
	if !v.post {
		return "list"
	}
	return fmt.Sprintf("post(%s)", v.slug)
}
