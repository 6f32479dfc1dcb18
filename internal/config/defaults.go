package config

// Built-in filter defaults. Any of these lists can be replaced wholesale by a
// config-file or flag override; they are never merged.

var defaultAllowedExtensions = []string{
	".go", ".py", ".pyi", ".js", ".jsx", ".mjs", ".ts", ".tsx",
	".rb", ".rs", ".java", ".kt", ".kts", ".c", ".h", ".cpp", ".cc", ".hpp",
	".cs", ".php", ".pl", ".pm", ".lua", ".swift", ".sh", ".bash", ".zsh",
	".sql", ".html", ".htm", ".css", ".scss", ".less",
	".md", ".markdown", ".txt", ".rst",
	".json", ".yaml", ".yml", ".toml", ".xml", ".ini", ".cfg", ".conf",
	".mk", ".cmake", ".proto", ".graphql", ".tf",
}

// Filenames that bypass the extension check (and the dotfile rule). Matched
// case-insensitively against the basename.
var defaultAllowedFilenames = []string{
	"makefile", "gnumakefile", "dockerfile", "rakefile", "gemfile",
	"cmakelists.txt", "license", "readme", "authors", "changelog",
	"go.mod", ".gitignore", ".gitattributes", ".editorconfig", ".env.example",
}

var defaultSkipDirectories = []string{
	".git", ".hg", ".svn",
	"node_modules", "vendor", "bower_components",
	"dist", "build", "out", "target", "bin", "obj",
	"__pycache__", ".venv", "venv", ".tox", ".mypy_cache",
	".idea", ".vscode", ".next", ".terraform", "coverage", ".nyc_output",
}

var defaultSkipDirectoryPatterns = []string{
	`^\..+_cache$`,
	`\.egg-info$`,
}

// Matched case-insensitively against the basename.
var defaultSkipFilenames = []string{
	"package-lock.json", "yarn.lock", "pnpm-lock.yaml",
	"go.sum", "cargo.lock", "composer.lock", "poetry.lock", "gemfile.lock",
	".ds_store", "thumbs.db",
}

var defaultSkipPatterns = []string{
	`\.min\.(js|css)$`,
	`\.(snap|map)$`,
}
