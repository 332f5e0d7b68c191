// Package vocabulary holds the static skill table consulted by the pattern
// classifier. The table is assembled once at package init and is read-only
// afterwards, which is what makes lock-free concurrent classification safe.
package vocabulary

// OtherCategory is the bucket for skills reported by the LLM path that the
// static table does not know about.
const OtherCategory = "other"

// Skill maps a canonical lowercase name to its surface-form aliases.
type Skill struct {
	Canonical string
	Aliases   []string
}

// Category is a named, ordered list of skills. Categories and skills are
// kept in slices rather than maps so iteration order is deterministic.
type Category struct {
	Name   string
	Skills []Skill
}

// Table is the full skill vocabulary.
type Table struct {
	categories []Category
}

// Categories returns the category list in enumeration order. Callers must
// treat the returned slices as read-only.
func (t *Table) Categories() []Category {
	return t.categories
}

// CategoryNames returns the category names in enumeration order.
func (t *Table) CategoryNames() []string {
	names := make([]string, 0, len(t.categories))
	for _, c := range t.categories {
		names = append(names, c.Name)
	}
	return names
}

var defaultTable = &Table{categories: []Category{
	{Name: "programming", Skills: []Skill{
		{Canonical: "python", Aliases: []string{"python", "python programming", "python3", "python 3", "py", "django", "flask", "fastapi"}},
		{Canonical: "java", Aliases: []string{"java", "java programming", "j2ee", "spring", "hibernate", "maven"}},
		{Canonical: "javascript", Aliases: []string{"javascript", "js", "node.js", "nodejs", "react", "angular", "vue", "typescript", "ts"}},
		{Canonical: "c++", Aliases: []string{"c++", "cpp", "c plus plus", "stl", "boost"}},
		{Canonical: "c#", Aliases: []string{"c#", "csharp", "dotnet", ".net", "asp.net"}},
		{Canonical: "ruby", Aliases: []string{"ruby", "ruby on rails", "rails", "ror"}},
		{Canonical: "php", Aliases: []string{"php", "laravel", "symfony", "wordpress"}},
		{Canonical: "swift", Aliases: []string{"swift", "ios development", "xcode"}},
		{Canonical: "kotlin", Aliases: []string{"kotlin", "android development"}},
		{Canonical: "go", Aliases: []string{"go", "golang"}},
		{Canonical: "rust", Aliases: []string{"rust", "rust programming"}},
		{Canonical: "css", Aliases: []string{"css", "css3"}},
		{Canonical: "html", Aliases: []string{"html", "html5"}},
	}},
	{Name: "frameworks", Skills: []Skill{
		{Canonical: "react", Aliases: []string{"react", "react.js", "reactjs", "redux", "next.js"}},
		{Canonical: "angular", Aliases: []string{"angular", "angularjs", "ng"}},
		{Canonical: "vue", Aliases: []string{"vue", "vue.js", "vuejs", "nuxt"}},
		{Canonical: "django", Aliases: []string{"django", "django framework"}},
		{Canonical: "flask", Aliases: []string{"flask", "flask framework"}},
		{Canonical: "spring", Aliases: []string{"spring", "spring boot", "spring framework"}},
		{Canonical: "express", Aliases: []string{"express", "express.js", "expressjs"}},
		{Canonical: "node", Aliases: []string{"node", "node.js", "nodejs", "express"}},
		{Canonical: "laravel", Aliases: []string{"laravel"}},
		{Canonical: "silverstripe", Aliases: []string{"silverstripe"}},
		{Canonical: "rails", Aliases: []string{"rails", "ruby on rails", "ror"}},
	}},
	{Name: "databases", Skills: []Skill{
		{Canonical: "mysql", Aliases: []string{"mysql", "mariadb"}},
		{Canonical: "postgresql", Aliases: []string{"postgresql", "postgres", "pg"}},
		{Canonical: "mongodb", Aliases: []string{"mongodb", "mongo", "nosql"}},
		{Canonical: "redis", Aliases: []string{"redis", "redis cache"}},
		{Canonical: "cassandra", Aliases: []string{"cassandra", "apache cassandra"}},
		{Canonical: "elasticsearch", Aliases: []string{"elasticsearch", "elastic", "elk stack"}},
		{Canonical: "dynamodb", Aliases: []string{"dynamodb", "aws dynamodb"}},
	}},
	{Name: "cloud", Skills: []Skill{
		{Canonical: "aws", Aliases: []string{"aws", "amazon web services", "ec2", "s3", "lambda", "cloudfront"}},
		{Canonical: "azure", Aliases: []string{"azure", "microsoft azure", "azure cloud"}},
		{Canonical: "gcp", Aliases: []string{"gcp", "google cloud", "google cloud platform"}},
		{Canonical: "kubernetes", Aliases: []string{"kubernetes", "k8s", "kubectl"}},
		{Canonical: "docker", Aliases: []string{"docker", "docker compose", "containerization"}},
		{Canonical: "terraform", Aliases: []string{"terraform", "iac", "infrastructure as code"}},
	}},
	{Name: "tools", Skills: []Skill{
		{Canonical: "git", Aliases: []string{"git", "github", "gitlab", "bitbucket"}},
		{Canonical: "jenkins", Aliases: []string{"jenkins", "ci/cd", "continuous integration"}},
		{Canonical: "jira", Aliases: []string{"jira", "atlassian", "agile tools"}},
		{Canonical: "confluence", Aliases: []string{"confluence", "documentation"}},
		{Canonical: "slack", Aliases: []string{"slack", "team collaboration"}},
		{Canonical: "agile", Aliases: []string{"agile", "scrum", "kanban", "sprint"}},
	}},
	{Name: "ai_ml", Skills: []Skill{
		{Canonical: "machine_learning", Aliases: []string{"machine learning", "ml", "supervised learning", "unsupervised learning"}},
		{Canonical: "deep_learning", Aliases: []string{"deep learning", "neural networks", "cnn", "rnn", "lstm"}},
		{Canonical: "tensorflow", Aliases: []string{"tensorflow", "tf", "keras"}},
		{Canonical: "pytorch", Aliases: []string{"pytorch", "torch"}},
		{Canonical: "scikit", Aliases: []string{"scikit-learn", "sklearn", "scikit"}},
		{Canonical: "nlp", Aliases: []string{"nlp", "natural language processing", "text mining"}},
		{Canonical: "computer_vision", Aliases: []string{"computer vision", "cv", "image processing", "opencv"}},
	}},
	{Name: "payment_gateways", Skills: []Skill{
		{Canonical: "stripe", Aliases: []string{"stripe", "stripe payment"}},
		{Canonical: "paypal", Aliases: []string{"paypal", "paypal payment"}},
		{Canonical: "razorpay", Aliases: []string{"razorpay", "razorpay payment"}},
		{Canonical: "authorizenet", Aliases: []string{"authorizenet", "authorizenet payment", "authorize.net", "authorize.net payment"}},
	}},
}}

// Default returns the shared read-only skill table.
func Default() *Table {
	return defaultTable
}
