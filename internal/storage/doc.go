// Package storage persists event records and weather observations in a
// single JSON data file. It stands in for the relational store the serving
// layer owns; the pipeline only touches it through the narrow insert/list
// surface. Records are append-only and inserts are written through to disk,
// so a failed run keeps everything inserted before the failure.
package storage
