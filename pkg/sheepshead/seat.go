package sheepshead

// NextSeat returns the seat to the left of pos
func NextSeat(pos, n int) int {
	return (pos + 1) % n
}

// PreviousSeat returns the seat to the right of pos
func PreviousSeat(pos, n int) int {
	return (pos + n - 1) % n
}

// SeatAfter returns the seat offset places to the left of pos
func SeatAfter(pos, offset, n int) int {
	return (pos + offset) % n
}
