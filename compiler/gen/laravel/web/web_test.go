package web_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/crudgen/compiler/gen"
	"github.com/syssam/crudgen/compiler/gen/laravel/web"
	"github.com/syssam/crudgen/compiler/load"
)

func blogPost() *load.Schema {
	return &load.Schema{
		Name:      "BlogPost",
		TableName: "blog_posts",
		Namespace: "App/Models",
		Fields:    []*load.Field{{Name: "id"}, {Name: "title"}, {Name: "body"}},
	}
}

func comment() *load.Schema {
	return &load.Schema{Name: "Comment", TableName: "comments", Namespace: "App/Models"}
}

func code(t *testing.T, oracle gen.ClassOracle, kind any, model, parent gen.Model) (string, *gen.Method) {
	t.Helper()
	m, err := gen.NewMethod(nil, oracle, kind, model)
	require.NoError(t, err)
	if parent != nil {
		m.SetParent(parent)
	}
	out, err := m.Code()
	require.NoError(t, err)
	return out, m
}

func TestKinds(t *testing.T) {
	var names []string
	for _, k := range web.Kinds() {
		m, err := gen.NewMethod(nil, nil, k, blogPost())
		require.NoError(t, err)
		assert.False(t, m.IsAPI())
		names = append(names, m.MethodName())
	}
	assert.Equal(t, []string{"index", "create", "store", "show", "edit", "update", "destroy"}, names)
}

func TestStrategies(t *testing.T) {
	tests := []struct {
		kind any
		want gen.Strategy
	}{
		{web.Index{}, gen.StrategyView},
		{web.Create{}, gen.StrategyView},
		{web.Show{}, gen.StrategyView},
		{web.Edit{}, gen.StrategyView},
		{web.Store{}, gen.StrategyRedirect},
		{web.Update{}, gen.StrategyRedirect},
		{web.Destroy{}, gen.StrategyRedirect},
	}
	for _, tt := range tests {
		m, err := gen.NewMethod(nil, nil, tt.kind, blogPost())
		require.NoError(t, err)
		assert.Equal(t, tt.want, m.Strategy(), m.MethodName())
	}
}

func TestIndex(t *testing.T) {
	out, _ := code(t, nil, web.Index{}, blogPost(), nil)
	assert.Contains(t, out, "public function index()")
	assert.Contains(t, out, "$blogPosts = BlogPost::query()->paginate();")
	assert.Contains(t, out, "return view('blog_posts.index', compact('blogPosts'));")
}

func TestStore(t *testing.T) {
	t.Run("CustomRequest", func(t *testing.T) {
		oracle := gen.NewClassSet("App/Http/Requests/BlogPosts/StoreRequest")
		out, m := code(t, oracle, web.Store{}, blogPost(), nil)
		assert.Contains(t, out, "public function store(StoreRequest $request)")
		assert.Contains(t, out, "$blogPost = BlogPost::create($request->validated());")
		assert.Contains(t, out, "->route('blog_posts.show', $blogPost)")
		assert.Contains(t, out, "->with('success', 'Blog post created successfully.');")
		assert.Equal(t, []string{"App/Http/Requests/BlogPosts/StoreRequest"}, m.Namespaces())
	})
	t.Run("GenericRequest", func(t *testing.T) {
		out, m := code(t, nil, web.Store{}, blogPost(), nil)
		assert.Contains(t, out, "public function store(Request $request)")
		assert.Contains(t, out, "BlogPost::create($request->only(['title', 'body']))")
		assert.Equal(t, []string{"Illuminate/Http/Request"}, m.Namespaces())
	})
	t.Run("Nested", func(t *testing.T) {
		out, m := code(t, nil, web.Store{}, comment(), blogPost())
		assert.Contains(t, out, "public function store(Request $request, BlogPost $blogPost)")
		assert.Contains(t, out, "$comment = $blogPost->comments()->create($request->all());")
		assert.Contains(t, out, "->route('blog_posts.comments.show', [$blogPost, $comment])")
		assert.Equal(t, []string{"App/Models/BlogPost", "Illuminate/Http/Request"}, m.Namespaces())
	})
}

func TestUpdate(t *testing.T) {
	oracle := gen.NewClassSet("App/Http/Requests/BlogPosts/UpdateRequest")
	out, _ := code(t, oracle, web.Update{}, blogPost(), nil)
	assert.Contains(t, out, "public function update(UpdateRequest $request, BlogPost $blogPost)")
	assert.Contains(t, out, "$blogPost->update($request->validated());")
	assert.Contains(t, out, "'Blog post updated successfully.'")
}

func TestDestroy(t *testing.T) {
	out, m := code(t, nil, web.Destroy{}, comment(), blogPost())
	assert.Contains(t, out, "public function destroy(BlogPost $blogPost, Comment $comment)")
	assert.Contains(t, out, "$comment->delete();")
	assert.Contains(t, out, "->route('blog_posts.comments.index', $blogPost)")
	assert.NotContains(t, out, "$request")
	assert.Equal(t, []string{"App/Models/BlogPost"}, m.Namespaces())
}

func TestViews(t *testing.T) {
	tests := []struct {
		kind any
		want []string
	}{
		{web.Create{}, []string{"public function create(BlogPost $blogPost)", "return view('comments.create', compact('blogPost'));"}},
		{web.Show{}, []string{"public function show(BlogPost $blogPost, Comment $comment)", "compact('blogPost', 'comment')"}},
		{web.Edit{}, []string{"public function edit(BlogPost $blogPost, Comment $comment)", "view('comments.edit'"}},
	}
	for _, tt := range tests {
		out, m := code(t, nil, tt.kind, comment(), blogPost())
		t.Run(m.MethodName(), func(t *testing.T) {
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}
