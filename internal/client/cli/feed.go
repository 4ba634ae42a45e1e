package cli

import (
	"context"
	"fmt"
	"os"
)

const feedPageSize = 10

// Feed prints one page of the post feed, newest first as served by the
// API, with a minimal author line per post.
func (a *App) Feed(ctx context.Context, page int) error {
	pp, err := a.posts.List(ctx, page, feedPageSize)
	if err != nil {
		fmt.Println("Could not load feed:", err.Error())
		return err
	}

	if len(pp.Content) == 0 {
		fmt.Println("No posts on this page")
		return nil
	}

	// author lookups are cached per page; the same user usually posts
	// more than once
	authors := map[string]string{}
	for _, p := range pp.Content {
		author, ok := authors[p.UserID]
		if !ok {
			u := a.users.ByID(ctx, p.UserID)
			author = u.Name
			if u.Email != "" {
				author = fmt.Sprintf("%s <%s>", u.Name, u.Email)
			}
			authors[p.UserID] = author
		}

		fmt.Println("----------------------------------------")
		fmt.Println(author)
		fmt.Println(p.Content)
		if p.MediaURL != "" {
			fmt.Println("media:", p.MediaURL)
		}
		fmt.Printf("likes: %d  comments: %d\n", p.LikesCount, p.CommentsCount)
	}

	fmt.Println("----------------------------------------")
	fmt.Printf("page %d of %d (%d posts total)\n", pp.Pageable.PageNumber+1, pp.TotalPages, pp.TotalElements)
	return nil
}

// CreatePost reads a multi-line post body and an optional media URL, then
// publishes the post.
func (a *App) CreatePost(ctx context.Context) error {
	content, err := GetMultiline(a.reader, "Enter post text", os.Stdout)
	if err != nil {
		return err
	}

	mediaURL, err := getSimpleText(a.reader, "Media URL (optional)", os.Stdout)
	if err != nil {
		return err
	}

	post, err := a.posts.Create(ctx, content, mediaURL)
	if err != nil {
		fmt.Println("Could not publish post:", err.Error())
		return err
	}

	fmt.Println("Post published:", post.ID)
	return nil
}
