// Package window implements the "starting soon" inclusion decision.
package window
