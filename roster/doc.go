// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package roster loads the fixed list of entries every session compares.

A roster is a YAML document:

	title: Office snacks
	entries:
	  - Pretzels
	  - Popcorn
	  - Trail mix

Load and Parse validate it: between 2 and 200 unique, non-empty names of at
most 100 characters. Default returns the built-in list used when no file is
configured.

Search filters entries with a case-insensitive fuzzy match, best match first.
*/
package roster
