// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package exc

const (
	CodeUnknownFatal                   = "M0000"
	CodeFileNotFound                   = "M0001"
	CodeUnsupportedFileSystemOperation = "M0002"
	CodePermissionDenied               = "M0003"
	CodeUnknownGrammar                 = "M0004"
	CodeUnknownNumericKind             = "M0005"
	CodeInvalidOption                  = "M0006"
)

// Parse failure codes. Every Leaf carries exactly one of these.
const (
	CodeUnexpectedEnd      = "P0001"
	CodeUnexpectedChar     = "P0002"
	CodeUnexpectedString   = "P0003"
	CodeUnexpectedCharType = "P0004"
	CodeNumberOverflow     = "P0005"
	CodeInvalidFloat       = "P0006"
	CodeVerifyFailed       = "P0007"
)

var (
	defaultNonFatal = map[string]bool{}
)
