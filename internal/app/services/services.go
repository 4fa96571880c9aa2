package services

// Services defined in this package:
// - CatalogService: search and course pages over the normalized catalog
// - GradesService: exam histograms and averages from the histogram repository
// - ExportService: spreadsheet export of the catalog
