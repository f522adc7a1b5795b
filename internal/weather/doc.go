// Package weather joins stored event dates against the Open-Meteo daily
// forecast API.
//
// Enrichment groups event ids by their distinct dates so each date costs one
// provider call no matter how many events share it. Each event under a date
// then gets its own observation row carrying the same fetched values. A date
// whose fetch fails simply contributes nothing; the batch never aborts.
package weather
