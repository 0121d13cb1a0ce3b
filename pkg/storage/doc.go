// Package storage persists collected aggregate records.
//
// Each reading prefix produces exactly one file in the output directory,
// named <ordinal>_<symbol>.json, holding the prefix's full entry list plus
// collection metadata. Files are written atomically via a temp file and
// rename so interrupted runs never leave partial records.
package storage
