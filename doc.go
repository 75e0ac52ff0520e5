// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/contentglob

/*
Package contentglob decides which content files to source by glob patterns.

Patterns are compiled once into a single regular expression, so testing a
path costs one match no matter how many patterns were given. A matcher built
from several patterns accepts a path when any of them does; an empty pattern
list accepts nothing.

Basic flow:
  - compile patterns (`Compile` / `CompileWithOptions`)
  - test root-relative paths (`Matcher.Match` / `Matcher.MatchPath`)
  - for absolute paths, bind patterns to root folders (`NewRootMatcher`)
  - exclude built-in partial and test files (`DefaultExcludes`)
  - keep files text can be extracted from (`IsTranslatable` / `FilterTranslatable`)

Root-relative matching exists for patterns excluding "_" folders: they must
exclude "_partials" inside a docs folder but not a "_work" folder the whole
site lives in. A path outside every root is reported as *RootNotFoundError,
never as a non-match.

Filesystem expansion sits behind the `Expander` interface. `FSExpander`
walks any fs.FS with doublestar; `Source` and `Config` combine expansion and
root-relative exclusion for configured content folders.

Supported glob syntax: "*", "?", "**" segments, "[...]" classes with "!" or
"^" negation and POSIX names, "{a,b}" alternation, "{1..3}" and "{a..c}"
ranges, "@(a|b)", "?(a)", "+(a)" and "*(a)" extglobs, "\" escapes and a
leading "!" negating the whole pattern. Wildcards skip dot-leading segments
unless CompileOptions.Dot is set.
*/
package contentglob
