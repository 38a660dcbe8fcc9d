// Copyright (c) 2025 horeilly
//
// This software is licensed under the MIT License.
// See the LICENSE file in the root of the repository for details.

package main

import "github.com/horeilly/qdl-tee-times/cmd"

func main() {
	cmd.Execute()
}
