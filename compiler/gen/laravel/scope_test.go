package laravel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/crudgen/compiler/gen"
	"github.com/syssam/crudgen/compiler/load"
)

type store struct{}

func blogPost() *load.Schema {
	return &load.Schema{
		Name:      "BlogPost",
		TableName: "blog_posts",
		Namespace: "App/Models",
		Fields:    []*load.Field{{Name: "id"}, {Name: "title"}, {Name: "body"}},
	}
}

func user() *load.Schema {
	return &load.Schema{Name: "User", TableName: "users", Namespace: "App/Models"}
}

func newMethod(t *testing.T, oracle gen.ClassOracle, model gen.Model) *gen.Method {
	t.Helper()
	m, err := gen.NewMethod(nil, oracle, store{}, model)
	require.NoError(t, err)
	return m
}

func TestNewScope(t *testing.T) {
	t.Run("Flat", func(t *testing.T) {
		s, err := NewScope(newMethod(t, nil, blogPost()))
		require.NoError(t, err)
		assert.Equal(t, "store", s.Method)
		assert.Equal(t, "BlogPost", s.Model)
		assert.Equal(t, "blogPost", s.Var)
		assert.Equal(t, "blogPosts", s.PluralVar)
		assert.Equal(t, "Blog post", s.Label)
		assert.Equal(t, "blog posts", s.PluralLabel)
		assert.Equal(t, "blog_posts", s.Route)
		assert.Equal(t, "blog_posts.store", s.View)
		assert.Equal(t, "BlogPost::query()", s.Query())
		assert.Empty(t, s.Parent)
	})
	t.Run("Nested", func(t *testing.T) {
		m := newMethod(t, nil, blogPost()).SetParent(user())
		s, err := NewScope(m)
		require.NoError(t, err)
		assert.Equal(t, "User", s.Parent)
		assert.Equal(t, "user", s.ParentVar)
		assert.Equal(t, "users.blog_posts", s.Route)
		assert.Equal(t, "$user->blogPosts()", s.Query())
	})
}

func TestScopeParams(t *testing.T) {
	s := &Scope{Model: "BlogPost", Var: "blogPost", Request: "StoreRequest"}
	assert.Equal(t, "StoreRequest $request, BlogPost $blogPost", s.Params("request", "parent", "model"))
	assert.Equal(t, "", s.Params("parent"))
	assert.Equal(t, ", $blogPost", s.RouteArgs(true))
	assert.Equal(t, "", s.RouteArgs(false))

	s.Parent, s.ParentVar = "User", "user"
	assert.Equal(t, "User $user, BlogPost $blogPost", s.Params("parent", "model"))
	assert.Equal(t, ", [$user, $blogPost]", s.RouteArgs(true))
	assert.Equal(t, ", $user", s.RouteArgs(false))
}

func TestScopeWithRequest(t *testing.T) {
	t.Run("Custom", func(t *testing.T) {
		oracle := gen.NewClassSet("App/Http/Requests/BlogPosts/StoreRequest")
		m := newMethod(t, oracle, blogPost())
		s, err := NewScope(m)
		require.NoError(t, err)
		s.WithRequest(m)
		assert.Equal(t, "StoreRequest", s.Request)
		assert.Equal(t, "$request->validated()", s.Input)
		assert.Equal(t, []string{"App/Http/Requests/BlogPosts/StoreRequest"}, m.Namespaces())
	})
	t.Run("FallbackFillable", func(t *testing.T) {
		m := newMethod(t, nil, blogPost())
		s, err := NewScope(m)
		require.NoError(t, err)
		s.WithRequest(m)
		assert.Equal(t, "Request", s.Request)
		assert.Equal(t, "$request->only(['title', 'body'])", s.Input)
		assert.Equal(t, []string{IlluminateRequest}, m.Namespaces())
	})
	t.Run("FallbackAll", func(t *testing.T) {
		m := newMethod(t, nil, user())
		s, err := NewScope(m)
		require.NoError(t, err)
		s.WithRequest(m)
		assert.Equal(t, "$request->all()", s.Input)
	})
}

func TestScopeWithResource(t *testing.T) {
	m := newMethod(t, nil, blogPost())
	s, err := NewScope(m)
	require.NoError(t, err)
	s.WithResource(m)
	assert.Equal(t, "BlogPostResource", s.Resource)
	assert.Equal(t, []string{"App/Http/Resources/BlogPostResource"}, m.Namespaces())
}
