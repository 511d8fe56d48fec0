// Command contour extracts structured outlines from PDF documents.
package main

func main() {
	Execute()
}
