package services

import (
	"context"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/lumina/internal/client/client"
	"github.com/dmitrijs2005/lumina/internal/client/models"
)

// Community covers forum posts, comments, submissions, project ideas and
// voting.
type Community struct {
	api client.Doer
}

func NewCommunity(api client.Doer) *Community {
	return &Community{api: api}
}

type PostQuery struct {
	Category models.PostCategory
	Search   string
	PageQuery
}

func (c *Community) Posts(ctx context.Context, q PostQuery) (models.Page[models.Post], error) {
	v := url.Values{}
	setIf(v, "category", string(q.Category))
	setIf(v, "search", q.Search)
	q.apply(v)
	return client.Get[models.Page[models.Post]](ctx, c.api, withQuery("/api/forums", v))
}

func (c *Community) Post(ctx context.Context, id string) (models.Post, error) {
	return client.Get[models.Post](ctx, c.api, resource("/api/forums", id))
}

func (c *Community) CreatePost(ctx context.Context, in models.PostInput) (models.Post, error) {
	if err := checkInput(in); err != nil {
		return models.Post{}, err
	}
	return client.Post[models.Post](ctx, c.api, "/api/forums", in)
}

func (c *Community) UpdatePost(ctx context.Context, id string, in models.PostUpdate) (models.Post, error) {
	return client.Put[models.Post](ctx, c.api, resource("/api/forums", id), in)
}

func (c *Community) DeletePost(ctx context.Context, id string) (models.Message, error) {
	return client.Delete[models.Message](ctx, c.api, resource("/api/forums", id))
}

func (c *Community) UpvotePost(ctx context.Context, id string) (models.Message, error) {
	return client.Post[models.Message](ctx, c.api, resource("/api/forums", id, "upvote"), nil)
}

func (c *Community) Comments(ctx context.Context, postID string) ([]models.Comment, error) {
	return client.Get[[]models.Comment](ctx, c.api, resource("/api/forums", postID, "comments"))
}

func (c *Community) AddComment(ctx context.Context, postID string, in models.CommentInput) (models.Comment, error) {
	if err := checkInput(in); err != nil {
		return models.Comment{}, err
	}
	return client.Post[models.Comment](ctx, c.api, resource("/api/forums", postID, "comments"), in)
}

type SubmissionQuery struct {
	UserID    string
	ProjectID string
	Status    models.SubmissionStatus
	PageQuery
}

func (c *Community) Submissions(ctx context.Context, q SubmissionQuery) (models.Page[models.Submission], error) {
	v := url.Values{}
	setIf(v, "user_id", q.UserID)
	setIf(v, "project_id", q.ProjectID)
	setIf(v, "status", string(q.Status))
	q.apply(v)
	return client.Get[models.Page[models.Submission]](ctx, c.api, withQuery("/api/submissions", v))
}

func (c *Community) Submit(ctx context.Context, in models.SubmissionInput) (models.Submission, error) {
	if err := checkInput(in); err != nil {
		return models.Submission{}, err
	}
	return client.Post[models.Submission](ctx, c.api, "/api/submissions", in)
}

type IdeaQuery struct {
	SolarSystemID  string
	Status         models.ProjectStatus
	IncludeExpired bool
	PageQuery
}

func (c *Community) Ideas(ctx context.Context, q IdeaQuery) (models.Page[models.ProjectIdea], error) {
	v := url.Values{}
	setIf(v, "solar_system_id", q.SolarSystemID)
	setIf(v, "status", string(q.Status))
	if q.IncludeExpired {
		v.Set("include_expired", strconv.FormatBool(true))
	}
	q.apply(v)
	return client.Get[models.Page[models.ProjectIdea]](ctx, c.api, withQuery("/api/project-ideas", v))
}

func (c *Community) Idea(ctx context.Context, id string) (models.ProjectIdea, error) {
	return client.Get[models.ProjectIdea](ctx, c.api, resource("/api/project-ideas", id))
}

func (c *Community) ProposeIdea(ctx context.Context, in models.ProjectIdeaInput) (models.ProjectIdea, error) {
	if err := checkInput(in); err != nil {
		return models.ProjectIdea{}, err
	}
	return client.Post[models.ProjectIdea](ctx, c.api, "/api/project-ideas", in)
}

// Vote casts an upvote, downvote or flag on a post or a project idea.
func (c *Community) Vote(ctx context.Context, in models.VoteRequest) (models.VoteResponse, error) {
	if err := checkInput(in); err != nil {
		return models.VoteResponse{}, err
	}
	return client.Post[models.VoteResponse](ctx, c.api, "/api/voting/vote", in)
}
