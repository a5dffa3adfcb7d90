// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// ntaccount resolves Windows account names to security identities.
//
//	ntaccount resolve [--system HOST] [--json] NAME...
//	ntaccount compare NAME NAME
//	ntaccount export [-o FILE] NAME...
//	ntaccount inspect [--json | --diag] FILE
//	ntaccount wellknown [--json]
//	ntaccount version
//
// Resolution goes through the platform account service, so resolve,
// compare and export only work on Windows; elsewhere they fail with
// ERROR_CALL_NOT_IMPLEMENTED. inspect and wellknown work everywhere.
//
// Configuration is read from --config, else $NTACCOUNT_CONFIG, else
// built-in defaults. See lib/config for the file format.
//
// Exit status:
//
//	0  every name resolved, or the compared names are the same principal
//	1  a name was not found, or the compared names differ
//	2  any other error
package main
