// SPDX-License-Identifier: MIT

package reduction

// FanOut exposes the worker-pool barrier to reduction_test.
var FanOut = fanOut
