// Package temperature converts between fahrenheit and celsius.
package temperature
