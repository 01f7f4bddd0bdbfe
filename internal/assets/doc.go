// Package assets provides CSS styles and HTML page templates for documents.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in styles)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// EmbeddedLoader provides the built-in styles (default, minimal, print) and
// the document page template, embedded at compile time.
//
// FilesystemLoader reads the same tree from a user directory. Symlinks are
// followed only while they stay inside it.
//
// AssetResolver is the loader used by the converter: custom directory first,
// embedded set for whatever the directory lacks, so one stylesheet can be
// overridden on its own.
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css       # stylesheet (e.g., default.css)
//	└── templates/
//	    └── {name}.html      # page template (e.g., document.html)
//
// Page templates are html/template sources receiving .Title, .Lang, .CSS and
// .Body.
//
// # Names
//
// Asset names are bare words (letters, digits, '-' and '_'); anything else
// is rejected with ErrInvalidAssetName before a file is touched.
package assets
