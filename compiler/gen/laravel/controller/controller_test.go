package controller

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/crudgen/compiler/gen"
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

func TestGenerate(t *testing.T) {
	oracle := gen.NewClassSet("App/Http/Requests/BlogPosts/StoreRequest")
	c, err := New(nil, oracle).Generate(blogPost(), nil)
	require.NoError(t, err)

	assert.Equal(t, "BlogPostController", c.Name)
	assert.Equal(t, "App/Http/Controllers", c.Namespace)
	assert.Equal(t, "app/Http/Controllers/BlogPostController.php", c.Path)
	assert.Equal(t, []string{
		"App/Http/Requests/BlogPosts/StoreRequest",
		"App/Models/BlogPost",
		"Illuminate/Http/Request",
	}, c.Imports)

	var names []string
	for _, m := range c.Methods {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"index", "create", "store", "show", "edit", "update", "destroy"}, names)

	assert.True(t, strings.HasPrefix(c.Source, "<?php\n\nnamespace App\\Http\\Controllers;\n\nuse App\\Http\\Requests\\BlogPosts\\StoreRequest;\n"))
	assert.Contains(t, c.Source, "use Illuminate\\Http\\Request;\n\nclass BlogPostController extends Controller\n{\n    /**")
	assert.Contains(t, c.Source, "    }\n\n    /**")
	assert.NotContains(t, c.Source, "\n\n\n")
	assert.True(t, strings.HasSuffix(c.Source, "    }\n}\n"))
	assert.Contains(t, c.Source, "public function store(StoreRequest $request)")
	assert.Contains(t, c.Source, "public function update(Request $request, BlogPost $blogPost)")
}

func TestGenerateNested(t *testing.T) {
	c, err := New(nil, nil).Generate(comment(), blogPost())
	require.NoError(t, err)
	assert.Equal(t, "BlogPostCommentController", c.Name)
	// The parent is registered by every method but imported once.
	assert.Equal(t, []string{"App/Models/BlogPost", "App/Models/Comment", "Illuminate/Http/Request"}, c.Imports)
	assert.Contains(t, c.Source, "public function index(BlogPost $blogPost)")
	assert.Contains(t, c.Source, "->route('blog_posts.comments.show', [$blogPost, $comment])")
}

func TestGenerateAPI(t *testing.T) {
	c, err := New(nil, nil, API()).Generate(blogPost(), nil)
	require.NoError(t, err)
	assert.Equal(t, "App/Http/Controllers/Api", c.Namespace)
	assert.Equal(t, "app/Http/Controllers/Api/BlogPostController.php", c.Path)
	assert.Equal(t, []string{
		"App/Http/Controllers/Controller",
		"App/Http/Resources/BlogPostResource",
		"App/Models/BlogPost",
		"Illuminate/Http/Request",
	}, c.Imports)
	assert.Len(t, c.Methods, 5)
	assert.Contains(t, c.Source, "namespace App\\Http\\Controllers\\Api;")
	assert.Contains(t, c.Source, "use App\\Http\\Controllers\\Controller;")
}

func TestGenerateOnly(t *testing.T) {
	c, err := New(nil, nil, Only("index", "show")).Generate(blogPost(), nil)
	require.NoError(t, err)
	require.Len(t, c.Methods, 2)
	assert.Equal(t, "index", c.Methods[0].Name)
	assert.Equal(t, "show", c.Methods[1].Name)
	assert.Equal(t, []string{"App/Models/BlogPost"}, c.Imports)
	assert.NotContains(t, c.Source, "function store")
}

func TestGenerateCustomConfig(t *testing.T) {
	cfg := gen.MustNewConfig(
		gen.WithRootNamespace("Acme"),
		gen.WithControllerNamespace("Web/Controllers"),
	)
	c, err := New(cfg, nil, Only("index")).Generate(blogPost(), nil)
	require.NoError(t, err)
	assert.Equal(t, "Acme/Web/Controllers", c.Namespace)
	assert.Equal(t, "acme/Web/Controllers/BlogPostController.php", c.Path)
}

func TestGenerateBackslashSeparator(t *testing.T) {
	dir := t.TempDir()
	request := filepath.Join(dir, "app", "Http", "Requests", "BlogPosts", "StoreRequest.php")
	require.NoError(t, os.MkdirAll(filepath.Dir(request), 0o755))
	require.NoError(t, os.WriteFile(request, []byte("<?php\n"), 0o644))

	cfg := gen.MustNewConfig(gen.WithSeparator(`\`))
	c, err := New(cfg, gen.NewFileOracle("App", filepath.Join(dir, "app")), Only("store")).Generate(blogPost(), nil)
	require.NoError(t, err)
	assert.Equal(t, `App\Http\Controllers`, c.Namespace)
	assert.Equal(t, "app/Http/Controllers/BlogPostController.php", c.Path)
	assert.Contains(t, c.Source, "namespace App\\Http\\Controllers;\n")
	assert.Contains(t, c.Source, "use App\\Http\\Requests\\BlogPosts\\StoreRequest;\n")
	assert.Contains(t, c.Source, "public function store(StoreRequest $request)")
}

func TestGenerateErrors(t *testing.T) {
	_, err := New(nil, nil).Generate(nil, nil)
	require.Error(t, err)
	assert.True(t, gen.IsReflectionError(err))
}

func TestGenerateAll(t *testing.T) {
	jobs := []Job{
		{Model: blogPost()},
		{Model: comment(), Parent: blogPost()},
	}
	files, err := New(nil, nil).GenerateAll(context.Background(), jobs)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "app/Http/Controllers/BlogPostController.php", files[0].Path)
	assert.Equal(t, "app/Http/Controllers/BlogPostCommentController.php", files[1].Path)
	assert.Contains(t, string(files[1].Content), "class BlogPostCommentController")

	t.Run("Error", func(t *testing.T) {
		_, err := New(nil, nil).GenerateAll(context.Background(), []Job{{Model: blogPost()}, {}})
		require.Error(t, err)
	})
	t.Run("Canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := New(nil, nil).GenerateAll(ctx, jobs)
		require.ErrorIs(t, err, context.Canceled)
	})
}
