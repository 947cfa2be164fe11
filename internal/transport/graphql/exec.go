package graphql

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"strconv"

	"github.com/99designs/gqlgen/graphql"
	"github.com/google/uuid"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/heartmarshall/newsqa-backend/internal/domain"
	"github.com/heartmarshall/newsqa-backend/internal/transport/graphql/model"
)

//go:embed schema.graphqls
var schemaSDL string

var parsedSchema = gqlparser.MustLoadSchema(&ast.Source{Name: "schema.graphqls", Input: schemaSDL})

// ResolverRoot is implemented by resolver.Resolver.
type ResolverRoot interface {
	Query() QueryResolver
	Mutation() MutationResolver
	Question() QuestionResolver
	Answer() AnswerResolver
}

type QueryResolver interface {
	Session(ctx context.Context) (*domain.Viewer, error)
	Profile(ctx context.Context) (*domain.Profile, error)
	Articles(ctx context.Context) ([]domain.Article, error)
	ArticleGroups(ctx context.Context) ([]domain.ArticleGroup, error)
	Article(ctx context.Context, id uuid.UUID) (*domain.ArticleDetail, error)
}

type MutationResolver interface {
	CreateArticle(ctx context.Context, input model.CreateArticleInput) (*domain.Article, error)
	AskQuestion(ctx context.Context, input model.AskQuestionInput) (*domain.Question, error)
	PostAnswer(ctx context.Context, input model.PostAnswerInput) (*domain.Answer, error)
	SaveNickname(ctx context.Context, input model.SaveNicknameInput) (*domain.Profile, error)
}

type QuestionResolver interface {
	Author(ctx context.Context, obj *domain.Question) (*domain.Profile, error)
}

type AnswerResolver interface {
	Author(ctx context.Context, obj *domain.Answer) (*domain.Profile, error)
}

// Config wires resolvers into the executable schema.
type Config struct {
	Resolvers ResolverRoot
}

// NewExecutableSchema creates an ExecutableSchema from the ResolverRoot interface.
func NewExecutableSchema(cfg Config) graphql.ExecutableSchema {
	return &executableSchema{schema: parsedSchema, resolvers: cfg.Resolvers}
}

type executableSchema struct {
	schema    *ast.Schema
	resolvers ResolverRoot
}

func (e *executableSchema) Schema() *ast.Schema {
	return e.schema
}

func (e *executableSchema) Complexity(_ context.Context, _, _ string, _ int, _ map[string]any) (int, bool) {
	return 0, false
}

func (e *executableSchema) Exec(ctx context.Context) graphql.ResponseHandler {
	opCtx := graphql.GetOperationContext(ctx)
	ec := &executionContext{OperationContext: opCtx, resolvers: e.resolvers}

	var root func(context.Context, ast.SelectionSet) graphql.Marshaler
	switch opCtx.Operation.Operation {
	case ast.Query:
		root = ec.query
	case ast.Mutation:
		root = ec.mutation
	default:
		return graphql.OneShot(graphql.ErrorResponse(ctx, "unsupported GraphQL operation"))
	}

	first := true
	return func(ctx context.Context) *graphql.Response {
		if !first {
			return nil
		}
		first = false

		data := root(ctx, opCtx.Operation.SelectionSet)
		var buf bytes.Buffer
		data.MarshalGQL(&buf)

		return &graphql.Response{Data: buf.Bytes()}
	}
}

type executionContext struct {
	*graphql.OperationContext
	resolvers ResolverRoot
}

type resolveFunc func(ctx context.Context, field graphql.CollectedField, args map[string]any) (graphql.Marshaler, error)

// resolve runs a resolver-backed field. Errors and panics are recorded on
// the field's path and the field becomes null.
func (ec *executionContext) resolve(
	ctx context.Context,
	object string,
	field graphql.CollectedField,
	fn resolveFunc,
) (ret graphql.Marshaler) {
	args := field.ArgumentMap(ec.Variables)
	ctx = graphql.WithFieldContext(ctx, &graphql.FieldContext{
		Object:     object,
		Field:      field,
		Args:       args,
		IsMethod:   true,
		IsResolver: true,
	})
	defer func() {
		if r := recover(); r != nil {
			graphql.AddError(ctx, ec.Recover(ctx, r))
			ret = graphql.Null
		}
	}()

	m, err := fn(ctx, field, args)
	if err != nil {
		graphql.AddError(ctx, err)
		return graphql.Null
	}
	return m
}

// ---------------------------------------------------------------------------
// Roots
// ---------------------------------------------------------------------------

func (ec *executionContext) query(ctx context.Context, sel ast.SelectionSet) graphql.Marshaler {
	ctx = graphql.WithFieldContext(ctx, &graphql.FieldContext{Object: "Query"})
	fields := graphql.CollectFields(ec.OperationContext, sel, []string{"Query"})
	out := graphql.NewFieldSet(fields)
	for i, field := range fields {
		if field.Name == "__typename" {
			out.Values[i] = graphql.MarshalString("Query")
			continue
		}
		out.Values[i] = ec.resolve(ctx, "Query", field, ec.queryField)
	}
	return out
}

func (ec *executionContext) queryField(ctx context.Context, field graphql.CollectedField, args map[string]any) (graphql.Marshaler, error) {
	q := ec.resolvers.Query()

	switch field.Name {
	case "session":
		v, err := q.Session(ctx)
		if err != nil {
			return nil, err
		}
		return ec.marshalViewer(ctx, field.Selections, v), nil

	case "profile":
		p, err := q.Profile(ctx)
		if err != nil {
			return nil, err
		}
		return ec.marshalProfile(ctx, field.Selections, p), nil

	case "articles":
		articles, err := q.Articles(ctx)
		if err != nil {
			return nil, err
		}
		return ec.marshalArticles(ctx, field.Selections, articles), nil

	case "articleGroups":
		groups, err := q.ArticleGroups(ctx)
		if err != nil {
			return nil, err
		}
		return ec.list(ctx, len(groups), false, func(ctx context.Context, i int) graphql.Marshaler {
			return ec.marshalArticleGroup(ctx, field.Selections, &groups[i])
		}), nil

	case "article":
		id, err := model.UnmarshalUUID(args["id"])
		if err != nil {
			return nil, domain.NewValidationError("id", "must be a valid UUID")
		}
		d, err := q.Article(ctx, id)
		if err != nil {
			return nil, err
		}
		return ec.marshalArticleDetail(ctx, field.Selections, d), nil

	case "__schema", "__type":
		return nil, gqlerror.Errorf("introspection disabled")
	}

	return nil, fmt.Errorf("unknown field %q on Query", field.Name)
}

func (ec *executionContext) mutation(ctx context.Context, sel ast.SelectionSet) graphql.Marshaler {
	ctx = graphql.WithFieldContext(ctx, &graphql.FieldContext{Object: "Mutation"})
	fields := graphql.CollectFields(ec.OperationContext, sel, []string{"Mutation"})
	out := graphql.NewFieldSet(fields)
	// Mutation fields run one after another in document order.
	for i, field := range fields {
		if field.Name == "__typename" {
			out.Values[i] = graphql.MarshalString("Mutation")
			continue
		}
		out.Values[i] = ec.resolve(ctx, "Mutation", field, ec.mutationField)
	}
	return out
}

func (ec *executionContext) mutationField(ctx context.Context, field graphql.CollectedField, args map[string]any) (graphql.Marshaler, error) {
	m := ec.resolvers.Mutation()

	switch field.Name {
	case "createArticle":
		input, err := model.UnmarshalCreateArticleInput(args["input"])
		if err != nil {
			return nil, err
		}
		a, err := m.CreateArticle(ctx, input)
		if err != nil {
			return nil, err
		}
		return ec.marshalArticle(ctx, field.Selections, a), nil

	case "askQuestion":
		input, err := model.UnmarshalAskQuestionInput(args["input"])
		if err != nil {
			return nil, err
		}
		q, err := m.AskQuestion(ctx, input)
		if err != nil {
			return nil, err
		}
		return ec.marshalQuestion(ctx, field.Selections, q, []domain.Answer{}), nil

	case "postAnswer":
		input, err := model.UnmarshalPostAnswerInput(args["input"])
		if err != nil {
			return nil, err
		}
		a, err := m.PostAnswer(ctx, input)
		if err != nil {
			return nil, err
		}
		return ec.marshalAnswer(ctx, field.Selections, a), nil

	case "saveNickname":
		input, err := model.UnmarshalSaveNicknameInput(args["input"])
		if err != nil {
			return nil, err
		}
		p, err := m.SaveNickname(ctx, input)
		if err != nil {
			return nil, err
		}
		return ec.marshalProfile(ctx, field.Selections, p), nil
	}

	return nil, fmt.Errorf("unknown field %q on Mutation", field.Name)
}

func unknownField(typeName string, field graphql.CollectedField) graphql.Marshaler {
	panic("unknown field " + strconv.Quote(field.Name) + " on " + typeName)
}
