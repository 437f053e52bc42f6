// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 clamps x to [-1, 1] and scales it to 16-bit PCM.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// 32767 keeps +1.0 from overflowing
	return int16(x * 32767.0)
}

// Int16ToFloat32 maps 16-bit PCM to [-1, 1).
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}
