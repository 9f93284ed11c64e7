package load

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaTable(t *testing.T) {
	tests := []struct {
		schema   *Schema
		expected string
	}{
		{&Schema{Name: "BlogPost"}, "blog_posts"},
		{&Schema{Name: "Category"}, "categories"},
		{&Schema{Name: "User", TableName: "members"}, "members"},
	}

	for _, tt := range tests {
		t.Run(tt.schema.Name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.schema.Table())
		})
	}
}

func TestSchemaQualifiedName(t *testing.T) {
	assert.Equal(t, "App/Models/Post", (&Schema{Name: "Post", Namespace: "App/Models/"}).QualifiedName())
	assert.Equal(t, `App\Models\Post`, (&Schema{Name: "Post", Namespace: `App\Models`}).QualifiedName())
	assert.Equal(t, "Post", (&Schema{Name: "Post"}).QualifiedName())
}

func TestSchemaFillable(t *testing.T) {
	no := false
	yes := true
	s := &Schema{
		Name: "Post",
		Fields: []*Field{
			{Name: "id"},
			{Name: "title"},
			{Name: "secret", Fillable: &no},
			{Name: "created_at"},
			{Name: "updated_at", Fillable: &yes},
		},
	}

	assert.Equal(t, []string{"title", "updated_at"}, s.Fillable())
	assert.Nil(t, (&Schema{Name: "Empty"}).Fillable())
}

func TestSchemaRelations(t *testing.T) {
	s := &Schema{
		Name: "Comment",
		Relations: []*Relation{
			{Name: "post", Type: BelongsTo, Model: "Post"},
			{Name: "likes", Type: HasMany, Model: "Like"},
		},
	}

	parents := s.Parents()
	require.Len(t, parents, 1)
	assert.Equal(t, "Post", parents[0].Model)

	r, ok := s.Relation("likes")
	require.True(t, ok)
	assert.Equal(t, HasMany, r.Type)

	_, ok = s.Relation("missing")
	assert.False(t, ok)
}

func TestFile(t *testing.T) {
	c, err := File("testdata/blog.yaml", Options{Namespace: "Ignored"})
	require.NoError(t, err)

	assert.Equal(t, []string{"BlogPost", "Comment"}, c.Names())

	post, ok := c.Lookup("blogpost")
	require.True(t, ok)
	assert.Equal(t, "blog_posts", post.Table())
	assert.Equal(t, "App/Models/BlogPost", post.QualifiedName())
	assert.Equal(t, []string{"title", "body"}, post.Fillable())

	comment, ok := c.Lookup("comments")
	require.True(t, ok)
	assert.Equal(t, "Comment", comment.Name)
	require.Len(t, comment.Parents(), 1)
	assert.Equal(t, "BlogPost", comment.Parents()[0].Model)

	_, err = File("testdata/missing.yaml", Options{})
	assert.Error(t, err)
}

func TestParse(t *testing.T) {
	t.Run("default namespace", func(t *testing.T) {
		c, err := Parse([]byte("models:\n  - name: Post\n"), Options{Namespace: "App/Models"})

		require.NoError(t, err)
		assert.Equal(t, "App/Models/Post", c.Schemas[0].QualifiedName())
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := Parse([]byte("models: [\n"), Options{})

		require.Error(t, err)
		assert.True(t, IsSchemaError(err))
		assert.True(t, errors.Is(err, ErrInvalidSchema))
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := Parse([]byte("models:\n  - table: posts\n"), Options{})

		require.Error(t, err)
		assert.True(t, IsSchemaError(err))
	})

	t.Run("invalid relation type", func(t *testing.T) {
		_, err := Parse([]byte(`
models:
  - name: Post
    relations:
      - name: author
        type: morphTo
        model: Post
`), Options{})

		require.Error(t, err)
		assert.True(t, IsSchemaError(err))
	})

	t.Run("duplicate model", func(t *testing.T) {
		_, err := Parse([]byte("models:\n  - name: Post\n  - name: Post\n"), Options{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate model")
	})

	t.Run("unknown relation model", func(t *testing.T) {
		_, err := Parse([]byte(`
models:
  - name: Post
    relations:
      - name: author
        type: belongsTo
        model: User
`), Options{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown model "User"`)
	})
}

func TestSchemaError(t *testing.T) {
	cause := errors.New("boom")
	err := &SchemaError{Model: "Post", Message: "bad", Cause: cause}

	assert.Equal(t, "crudgen: schema error on model Post: bad: boom", err.Error())
	assert.True(t, errors.Is(err, cause))
	assert.True(t, errors.Is(err, ErrInvalidSchema))
	assert.False(t, IsSchemaError(cause))
}
