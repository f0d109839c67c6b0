package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Database errors
	DBConnectionError
	DBNotConnectedError
	DBTableCheckError
	DBQueryTablesError
	DBScanTableError
	DBDropTableError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError
	SchemaIncompatibleError
	SchemaVerifyError

	// Survey errors
	SurveyReadError
	SurveyParseError
	SurveyEmptyTitleError
	SurveyEmptyPersonError
	SurveyMovieRefError
	SurveyRatingRangeError

	// Ingest errors
	IngestTxError
	IngestMoviesError
	IngestRatingsError
	IngestMovieRefError

	// Load errors
	LoadJoinError
	LoadScanError

	// Imputation errors
	ImputeNoObservationsError

	// Standardization errors
	StandardizeGroupSizeError
	StandardizeZeroVarianceError
	StandardizeMissingRatingError
)
