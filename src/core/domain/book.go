package domain

import "fmt"

// Book prints as its title and author and measures its length in pages.
type Book struct {
	Title  string
	Author string
	Pages  int
}

func (b Book) String() string {
	return fmt.Sprintf("%q by %s", b.Title, b.Author)
}

func (b Book) GoString() string {
	return fmt.Sprintf("Book(title=%q, author=%q)", b.Title, b.Author)
}

func (b Book) Len() int {
	return b.Pages
}
