// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package reachability finds dead scripts.
//
// Scripts communicate through broadcast messages. The analysis is a fixpoint over the
// message graph: starting from the scripts run on program start or user input, every
// message broadcast by a reachable script makes its receivers reachable, which may
// broadcast further messages.
//
// Broadcasts of a computed message are ignored: they never make a receiver reachable.
//
// Each script's blocks are scanned at most once, and each message is resolved at most once,
// so the analysis is linear in the size of the project.
package reachability
