// Copyright 2026 Produtix Ltd.
// SPDX-License-Identifier: AGPL-3.0

package main

import "github.com/produtix/org-service/cmd"

func main() {
	cmd.Execute()
}
