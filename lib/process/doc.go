// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package process maps the error returned by the command tree to a
// process exit code, honouring errors that carry their own code. Other
// errors are written to stderr as "error: ..." because the structured
// logger may never have been initialized.
package process
