package csv

const (
	quote = '"'
	comma = ','
	nl    = '\n'
	cr    = '\r'
	space = ' '
)
