package gen

// testModel is a minimal Model used across the package tests.
type testModel struct {
	table string
	name  string
}

func (m *testModel) Table() string         { return m.table }
func (m *testModel) QualifiedName() string { return m.name }

// countingModel records how many times its qualified name was read.
type countingModel struct {
	testModel
	reads int
}

func (m *countingModel) QualifiedName() string {
	m.reads++
	return m.name
}

func blogPost() *testModel {
	return &testModel{table: "blog_posts", name: "App/Models/BlogPost"}
}

func post() *testModel {
	return &testModel{table: "posts", name: "App/Models/Post"}
}
