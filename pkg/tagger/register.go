package tagger

// Built-in taggers register themselves with the default registry.
func init() {
	DefaultRegistry.Register("csharp", NewCSharpTagger)
	DefaultRegistry.Register("c", NewCTagger)
	DefaultRegistry.Register("cpp", NewCTagger)
	DefaultRegistry.Register("markdown", NewMarkdownTagger)
	DefaultRegistry.Register("plaintext", NewPlainTextTagger)

	DefaultRegistry.RegisterAlias("cs", "csharp")
	DefaultRegistry.RegisterAlias("c++", "cpp")
	DefaultRegistry.RegisterAlias("md", "markdown")
	DefaultRegistry.RegisterAlias("text", "plaintext")
}
