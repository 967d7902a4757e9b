// Package changelog implements the changelog-derived versioning pipeline:
// classifying tagged commit messages into change entries, prepending dated
// version sections to the changelog document, and extracting the section for
// a specific version (optionally cleaned for production-facing output).
//
// The changelog document is a plain-text file partitioned into version
// sections. A section starts with a header line "# {version} [{timestamp}]"
// and runs to the next header. Sections are ordered newest-first.
package changelog
