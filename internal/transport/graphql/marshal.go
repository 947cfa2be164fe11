package graphql

import (
	"context"
	"sync"
	"time"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/heartmarshall/newsqa-backend/internal/domain"
	"github.com/heartmarshall/newsqa-backend/internal/transport/graphql/model"
)

// object marshals the selected fields of typeName in selection order.
func (ec *executionContext) object(
	ctx context.Context,
	sel ast.SelectionSet,
	typeName string,
	fn func(ctx context.Context, field graphql.CollectedField) graphql.Marshaler,
) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, []string{typeName})
	out := graphql.NewFieldSet(fields)
	for i, field := range fields {
		if field.Name == "__typename" {
			out.Values[i] = graphql.MarshalString(typeName)
			continue
		}
		out.Values[i] = fn(ctx, field)
	}
	return out
}

// within puts a plain field on the path of errors raised below it.
func within(ctx context.Context, object string, field graphql.CollectedField) context.Context {
	return graphql.WithFieldContext(ctx, &graphql.FieldContext{Object: object, Field: field})
}

// list marshals n elements. Concurrent lists let per-element resolvers
// share a dataloader batch.
func (ec *executionContext) list(
	ctx context.Context,
	n int,
	concurrent bool,
	fn func(ctx context.Context, i int) graphql.Marshaler,
) graphql.Marshaler {
	out := make(graphql.Array, n)

	elem := func(i int) {
		ctx := graphql.WithFieldContext(ctx, &graphql.FieldContext{Index: &i})
		defer func() {
			if r := recover(); r != nil {
				graphql.AddError(ctx, ec.Recover(ctx, r))
				out[i] = graphql.Null
			}
		}()
		out[i] = fn(ctx, i)
	}

	if !concurrent || n < 2 {
		for i := 0; i < n; i++ {
			elem(i)
		}
		return out
	}

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			elem(i)
		}()
	}
	wg.Wait()
	return out
}

func (ec *executionContext) marshalViewer(ctx context.Context, sel ast.SelectionSet, v *domain.Viewer) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	return ec.object(ctx, sel, "Viewer", func(_ context.Context, field graphql.CollectedField) graphql.Marshaler {
		switch field.Name {
		case "signedIn":
			return graphql.MarshalBoolean(v.SignedIn())
		case "userId":
			if !v.SignedIn() {
				return graphql.Null
			}
			return model.MarshalUUID(v.UserID)
		case "email":
			if !v.SignedIn() {
				return graphql.Null
			}
			return graphql.MarshalString(v.Email)
		case "nickname":
			return model.MarshalOptionalString(v.Nickname)
		case "label":
			return graphql.MarshalString(v.Label())
		}
		return unknownField("Viewer", field)
	})
}

func (ec *executionContext) marshalProfile(ctx context.Context, sel ast.SelectionSet, p *domain.Profile) graphql.Marshaler {
	if p == nil {
		return graphql.Null
	}
	return ec.object(ctx, sel, "Profile", func(_ context.Context, field graphql.CollectedField) graphql.Marshaler {
		switch field.Name {
		case "id":
			return model.MarshalUUID(p.ID)
		case "nickname":
			return model.MarshalOptionalString(p.Username)
		case "updatedAt":
			return model.MarshalDateTime(p.UpdatedAt)
		}
		return unknownField("Profile", field)
	})
}

func (ec *executionContext) marshalArticle(ctx context.Context, sel ast.SelectionSet, a *domain.Article) graphql.Marshaler {
	if a == nil {
		return graphql.Null
	}
	return ec.object(ctx, sel, "Article", func(_ context.Context, field graphql.CollectedField) graphql.Marshaler {
		switch field.Name {
		case "id":
			return model.MarshalUUID(a.ID)
		case "title":
			return model.MarshalOptionalString(a.Title)
		case "url":
			return model.MarshalOptionalString(a.URL)
		case "displayTitle":
			return graphql.MarshalString(a.DisplayTitle())
		case "createdAt":
			return model.MarshalDateTime(a.CreatedAt)
		}
		return unknownField("Article", field)
	})
}

func (ec *executionContext) marshalArticles(ctx context.Context, sel ast.SelectionSet, articles []domain.Article) graphql.Marshaler {
	return ec.list(ctx, len(articles), false, func(ctx context.Context, i int) graphql.Marshaler {
		return ec.marshalArticle(ctx, sel, &articles[i])
	})
}

func (ec *executionContext) marshalArticleGroup(ctx context.Context, sel ast.SelectionSet, g *domain.ArticleGroup) graphql.Marshaler {
	return ec.object(ctx, sel, "ArticleGroup", func(ctx context.Context, field graphql.CollectedField) graphql.Marshaler {
		switch field.Name {
		case "date":
			return graphql.MarshalString(g.Date.Format(time.DateOnly))
		case "articles":
			return ec.marshalArticles(within(ctx, "ArticleGroup", field), field.Selections, g.Articles)
		}
		return unknownField("ArticleGroup", field)
	})
}

func (ec *executionContext) marshalArticleDetail(ctx context.Context, sel ast.SelectionSet, d *domain.ArticleDetail) graphql.Marshaler {
	if d == nil {
		return graphql.Null
	}
	return ec.object(ctx, sel, "ArticleDetail", func(ctx context.Context, field graphql.CollectedField) graphql.Marshaler {
		switch field.Name {
		case "article":
			return ec.marshalArticle(within(ctx, "ArticleDetail", field), field.Selections, &d.Article)
		case "questions":
			return ec.list(within(ctx, "ArticleDetail", field), len(d.Questions), true, func(ctx context.Context, i int) graphql.Marshaler {
				th := &d.Questions[i]
				return ec.marshalQuestion(ctx, field.Selections, &th.Question, th.Answers)
			})
		}
		return unknownField("ArticleDetail", field)
	})
}

func (ec *executionContext) marshalQuestion(
	ctx context.Context,
	sel ast.SelectionSet,
	q *domain.Question,
	answers []domain.Answer,
) graphql.Marshaler {
	if q == nil {
		return graphql.Null
	}
	return ec.object(ctx, sel, "Question", func(ctx context.Context, field graphql.CollectedField) graphql.Marshaler {
		switch field.Name {
		case "id":
			return model.MarshalUUID(q.ID)
		case "articleId":
			return model.MarshalUUID(q.ArticleID)
		case "phrase":
			return graphql.MarshalString(q.Phrase)
		case "comment":
			return model.MarshalOptionalString(q.Comment)
		case "userId":
			return model.MarshalUUID(q.UserID)
		case "authorName":
			return graphql.MarshalString(domain.DisplayName(q.AuthorName))
		case "author":
			return ec.resolve(ctx, "Question", field, func(ctx context.Context, field graphql.CollectedField, _ map[string]any) (graphql.Marshaler, error) {
				p, err := ec.resolvers.Question().Author(ctx, q)
				if err != nil {
					return nil, err
				}
				return ec.marshalProfile(ctx, field.Selections, p), nil
			})
		case "createdAt":
			return model.MarshalDateTime(q.CreatedAt)
		case "answers":
			return ec.list(within(ctx, "Question", field), len(answers), true, func(ctx context.Context, i int) graphql.Marshaler {
				return ec.marshalAnswer(ctx, field.Selections, &answers[i])
			})
		}
		return unknownField("Question", field)
	})
}

func (ec *executionContext) marshalAnswer(ctx context.Context, sel ast.SelectionSet, a *domain.Answer) graphql.Marshaler {
	if a == nil {
		return graphql.Null
	}
	return ec.object(ctx, sel, "Answer", func(ctx context.Context, field graphql.CollectedField) graphql.Marshaler {
		switch field.Name {
		case "id":
			return model.MarshalUUID(a.ID)
		case "questionId":
			return model.MarshalUUID(a.QuestionID)
		case "articleId":
			return model.MarshalUUID(a.ArticleID)
		case "phrase":
			return model.MarshalOptionalString(a.Phrase)
		case "meaning":
			return model.MarshalOptionalString(a.Meaning)
		case "nuance":
			return model.MarshalOptionalString(a.Nuance)
		case "userId":
			return model.MarshalUUID(a.UserID)
		case "authorName":
			return graphql.MarshalString(domain.DisplayName(a.AuthorName))
		case "author":
			return ec.resolve(ctx, "Answer", field, func(ctx context.Context, field graphql.CollectedField, _ map[string]any) (graphql.Marshaler, error) {
				p, err := ec.resolvers.Answer().Author(ctx, a)
				if err != nil {
					return nil, err
				}
				return ec.marshalProfile(ctx, field.Selections, p), nil
			})
		case "createdAt":
			return model.MarshalDateTime(a.CreatedAt)
		}
		return unknownField("Answer", field)
	})
}
