package catalog

import "github.com/davidbz/genrerec/internal/domain"

const (
	// Movies is the name of the built-in movie catalog.
	Movies = "movies"
	// Books is the name of the built-in book catalog.
	Books = "books"
)

// Builtin returns the reference movie and book catalogs.
func Builtin() []*domain.Catalog {
	return []*domain.Catalog{
		domain.NewCatalog(Movies, movieItems()),
		domain.NewCatalog(Books, bookItems()),
	}
}

func movieItems() []domain.Item {
	return []domain.Item{
		{Title: "Interstellar", Genre: "Sci-Fi, Action"},
		{Title: "Titanic", Genre: "Romance, Drama"},
		{Title: "Kal Ho Na Ho", Genre: "Romance, Drama"},
		{Title: "Wednesday", Genre: "Mystery, Teen"},
		{Title: "Ra One", Genre: "Action, Sci-Fi"},
		{Title: "Inception", Genre: "Sci-Fi, Thriller"},
		{Title: "The Dark Knight", Genre: "Action, Crime"},
		{Title: "Shutter Island", Genre: "Mystery, Thriller"},
		{Title: "Jawan", Genre: "Action, Thriller"},
		{Title: "3 Idiots", Genre: "Comedy, Drama"},
		{Title: "Dangal", Genre: "Biography, Sports"},
		{Title: "Parasite", Genre: "Thriller, Drama"},
		{Title: "Avengers: Endgame", Genre: "Action, Superhero"},
		{Title: "Gladiator", Genre: "Action, Drama"},
		{Title: "Forrest Gump", Genre: "Drama, Romance"},
		{Title: "Zindagi Na Milegi Dobara", Genre: "Adventure, Comedy"},
		{Title: "The Wolf of Wall Street", Genre: "Biography, Crime"},
		{Title: "The Matrix", Genre: "Sci-Fi, Action"},
		{Title: "Jab We Met", Genre: "Romance, Comedy"},
		{Title: "Tumbbad", Genre: "Horror, Fantasy"},
		{Title: "Andhadhun", Genre: "Thriller, Mystery"},
		{Title: "Drishyam", Genre: "Thriller, Crime"},
		{Title: "Black Swan", Genre: "Psychological, Thriller"},
		{Title: "The Revenant", Genre: "Adventure, Drama"},
		{Title: "The Shawshank Redemption", Genre: "Drama, Crime"},
		{Title: "Kantara", Genre: "Fantasy, Thriller"},
		{Title: "Super 30", Genre: "Biography, Drama"},
		{Title: "Oppenheimer", Genre: "Biography, Thriller"},
		{Title: "Barfi!", Genre: "Romance, Comedy"},
		{Title: "PK", Genre: "Comedy, Drama"},
		{Title: "The Godfather", Genre: "Crime, Drama"},
		{Title: "Fight Club", Genre: "Drama, Thriller"},
		{Title: "The Social Network", Genre: "Biography, Drama"},
		{Title: "K.G.F: Chapter 2", Genre: "Action, Drama"},
		{Title: "Pathaan", Genre: "Action, Spy Thriller"},
		{Title: "The Conjuring", Genre: "Horror, Thriller"},
		{Title: "It", Genre: "Horror, Mystery"},
		{Title: "Bhoot", Genre: "Horror, Thriller"},
		{Title: "Bhool Bhulaiyaa", Genre: "Horror, Comedy"},
		{Title: "Get Out", Genre: "Horror, Mystery"},
		{Title: "Dhoom 2", Genre: "Action, Thriller"},
		{Title: "Mad Max: Fury Road", Genre: "Action, Adventure"},
		{Title: "Mission: Impossible - Fallout", Genre: "Action, Thriller"},
		{Title: "John Wick", Genre: "Action, Thriller"},
		{Title: "Logan", Genre: "Action, Drama"},
		{Title: "Gully Boy", Genre: "Musical, Drama"},
		{Title: "Ludo", Genre: "Comedy, Crime"},
		{Title: "The Prestige", Genre: "Mystery, Drama"},
		{Title: "Eternal Sunshine of the Spotless Mind", Genre: "Romance, Drama"},
		{Title: "The Green Mile", Genre: "Drama, Fantasy"},
	}
}

func bookItems() []domain.Item {
	return []domain.Item{
		{Title: "The Old Man and the Sea", Genre: "Adventure"},
		{Title: "Doctor Zhivago", Genre: "Romance, Fiction"},
		{Title: "The God of Small Things", Genre: "Fiction"},
		{Title: "Snow", Genre: "Drama, Fiction"},
		{Title: "The Golden Notebook", Genre: "Fiction"},
		{Title: "Harry Potter and the Sorcerer’s Stone", Genre: "Fantasy"},
		{Title: "1984", Genre: "Dystopian, Political"},
		{Title: "Pride and Prejudice", Genre: "Romance, Fiction"},
		{Title: "To Kill a Mockingbird", Genre: "Drama, Fiction"},
		{Title: "The Great Gatsby", Genre: "Tragedy, Fiction"},
		{Title: "The Lord of the Rings", Genre: "Fantasy, Adventure"},
		{Title: "Moby-Dick", Genre: "Adventure, Fiction"},
		{Title: "Crime and Punishment", Genre: "Psychological, Fiction"},
		{Title: "Don Quixote", Genre: "Satire, Adventure"},
		{Title: "The Catcher in the Rye", Genre: "Coming-of-Age, Fiction"},
		{Title: "One Hundred Years of Solitude", Genre: "Magical Realism, Fiction"},
		{Title: "Brave New World", Genre: "Dystopian, Sci-Fi"},
		{Title: "The Alchemist", Genre: "Philosophical, Fiction"},
		{Title: "The Picture of Dorian Gray", Genre: "Gothic, Fiction"},
		{Title: "The Hunger Games", Genre: "Dystopian, Sci-Fi"},
		{Title: "A Tale of Two Cities", Genre: "Historical, Fiction"},
		{Title: "Jane Eyre", Genre: "Romance, Fiction"},
		{Title: "Wuthering Heights", Genre: "Gothic, Romance"},
		{Title: "The Book Thief", Genre: "Historical, Drama"},
		{Title: "Les Misérables", Genre: "Historical, Fiction"},
		{Title: "The Road", Genre: "Post-Apocalyptic, Fiction"},
		{Title: "The Kite Runner", Genre: "Drama, Fiction"},
		{Title: "The Bell Jar", Genre: "Psychological, Fiction"},
		{Title: "Dracula", Genre: "Horror, Fiction"},
		{Title: "Frankenstein", Genre: "Horror, Fiction"},
		{Title: "The Hobbit", Genre: "Fantasy, Adventure"},
		{Title: "Life of Pi", Genre: "Adventure, Fiction"},
		{Title: "War and Peace", Genre: "Historical, Fiction"},
		{Title: "The Night Circus", Genre: "Fantasy, Fiction"},
		{Title: "Dune", Genre: "Sci-Fi, Fantasy"},
		{Title: "The Shadow of the Wind", Genre: "Mystery, Fiction"},
		{Title: "The Name of the Wind", Genre: "Fantasy, Fiction"},
		{Title: "The Stand", Genre: "Horror, Fiction"},
		{Title: "The Handmaid’s Tale", Genre: "Dystopian, Fiction"},
		{Title: "The Girl with the Dragon Tattoo", Genre: "Mystery, Thriller"},
		{Title: "The Fault in Our Stars", Genre: "Romance, Drama"},
		{Title: "Shantaram", Genre: "Adventure, Fiction"},
		{Title: "The Midnight Library", Genre: "Contemporary, Fiction"},
		{Title: "A Man Called Ove", Genre: "Contemporary, Fiction"},
		{Title: "Percy Jackson & The Lightning Thief", Genre: "Fantasy, Adventure"},
		{Title: "The Subtle Art of Not Giving a F*ck", Genre: "Self-Help, Non-Fiction"},
		{Title: "Sapiens", Genre: "History, Non-Fiction"},
		{Title: "Atomic Habits", Genre: "Self-Help, Non-Fiction"},
		{Title: "Rich Dad Poor Dad", Genre: "Finance, Non-Fiction"},
		{Title: "Ikigai", Genre: "Self-Help, Non-Fiction"},
		{Title: "The Power of Now", Genre: "Spirituality, Non-Fiction"},
	}
}
