package tags

// AliasList associates external alias-list files with a tag. Each list name
// resolves to "<lists dir>/<name>.txt", one alias per line.
type AliasList struct {
	Tag   string
	Lists []string
}

// DefaultAliasLists is the curated association between tags and the alias
// lists that feed them.
var DefaultAliasLists = []AliasList{
	{Tag: "Actor", Lists: []string{"actors"}},
	{Tag: "Africa", Lists: []string{"countriesInAfrica"}},
	{Tag: "Airplane", Lists: []string{"airlines", "airplanes", "airplaneParts"}},
	{Tag: "Alcohol", Lists: []string{"alcoholicDrinks", "alcohols", "beers", "vodkas", "whiskeys", "wines"}},
	{Tag: "Alligator", Lists: []string{"alligators"}},
	{Tag: "Amphibian", Lists: []string{"amphibians", "frogs", "toads"}},
	{Tag: "Anatomy", Lists: []string{"bones"}},
	{Tag: "Animal", Lists: []string{"alligators", "amphibians", "animals", "animalTypes", "bears", "bees", "birds", "bugs", "camels", "cats", "chickens", "cows", "crabs", "crocodiles", "crustaceans", "caimans", "dinosaurs", "dogs", "dolphins", "ducks", "fishes", "flies", "frogs", "toads", "goats", "gorillas", "horses", "kangaroos", "koalas", "lions", "lobsters", "mammals", "mice", "monkeys", "parrots", "penguins", "pigs", "rabbits", "rats", "reptiles", "sharks", "shrimps", "snails", "snakes", "turkeys", "turtles", "whales"}},
	{Tag: "Art", Lists: []string{"artists"}},
	{Tag: "Asian", Lists: []string{"countriesInAsia"}},
	{Tag: "Astrology", Lists: []string{"astrologicalSigns"}},
	{Tag: "Athlete", Lists: []string{"athletes"}},
	{Tag: "Aviation", Lists: []string{"airplanes", "airplaneParts"}},
	{Tag: "Baptist", Lists: []string{"baptists"}},
	{Tag: "Baseball", Lists: []string{"baseballPlayers", "baseballPositions", "baseballTeams"}},
	{Tag: "Basketball", Lists: []string{"basketballPlayers", "basketballPositions", "basketballTeams"}},
	{Tag: "Battery", Lists: []string{"batteries", "batteryTypes"}},
	{Tag: "Bear", Lists: []string{"bears"}},
	{Tag: "Bee", Lists: []string{"bees"}},
	{Tag: "Beer", Lists: []string{"beers"}},
	{Tag: "Biology", Lists: []string{"biologists", "biologicalScienceBranches"}},
	{Tag: "Bird", Lists: []string{"birds", "chickens", "ducks", "parrots", "penguins", "turkeys"}},
	{Tag: "Board Game", Lists: []string{"boardGames"}},
	{Tag: "Boat", Lists: []string{"boats", "boatParts"}},
	{Tag: "Bone", Lists: []string{"bones"}},
	{Tag: "Book", Lists: []string{"books", "bookstores"}},
	{Tag: "Bookstore", Lists: []string{"bookstores"}},
	{Tag: "Boxing", Lists: []string{"boxers"}},
	{Tag: "Brain", Lists: []string{"brainParts"}},
	{Tag: "Bug", Lists: []string{"bees", "bugs", "flies", "spiders", "snails"}},
	{Tag: "Camel", Lists: []string{"camels"}},
	{Tag: "Candy", Lists: []string{"candies", "chocolates"}},
	{Tag: "Car", Lists: []string{"cars", "carTypes"}},
	{Tag: "Cat", Lists: []string{"cats"}},
	{Tag: "Celebrity", Lists: []string{"actors", "baseballPlayers", "basketballPlayers", "boxers", "chefs", "comedians", "countryMusicSingers", "footballPlayers", "golfPlayers", "hockeyPlayers", "musicians", "rappers", "soccerPlayers", "tennisPlayers", "volleyballPlayers", "wrestlers"}},
	{Tag: "Chemistry", Lists: []string{"chemists", "chemistryElements", "chemistryTools"}},
	{Tag: "Chicken", Lists: []string{"chickens"}},
	{Tag: "Christian", Lists: []string{"christians", "baptists", "protestants"}},
	{Tag: "Cinematography", Lists: []string{"actors", "disneyMovies", "harryPotterBooks", "harryPotterCharacters", "harryPotterPlaces", "harryPotterSpells", "lordOfTheRingsCharacters", "lordOfTheRingsPlaces", "movies", "starTrekCharacters", "starTrekPlaces", "starTrekRaces", "starTrekTitles", "starWarsCharacters", "starWarsPlaces", "starWarsRaces", "starWarsTitles", "toyStoryCharacters", "transformersCharacters"}},
	{Tag: "Cooking", Lists: []string{"chefs"}},
	{Tag: "Cow", Lists: []string{"beefs", "cows"}},
	{Tag: "Cheese", Lists: []string{"cheeses"}},
	{Tag: "Clothing", Lists: []string{"clothingBrands", "clothingTypes"}},
	{Tag: "Cloud", Lists: []string{"clouds"}},
	{Tag: "Coca Cola", Lists: []string{"cokeProducts"}},
	{Tag: "Coffee", Lists: []string{"coffees"}},
	{Tag: "Color", Lists: []string{"colors"}},
	{Tag: "Comedian", Lists: []string{"comedians"}},
	{Tag: "Computer", Lists: []string{"computerHardware", "computerScientists"}},
	{Tag: "Construction Worker", Lists: []string{"constructionVehicles"}},
	{Tag: "Country Music", Lists: []string{"countryMusicSingers"}},
	{Tag: "Crab", Lists: []string{"crabs"}},
	{Tag: "Crocodile", Lists: []string{"caimans", "crocodiles"}},
	{Tag: "Crustacean", Lists: []string{"crabs", "crustaceans", "lobsters", "shrimps"}},
	{Tag: "Dancing", Lists: []string{"dances"}},
	{Tag: "Diet", Lists: []string{"diets"}},
	{Tag: "Dessert", Lists: []string{"desserts"}},
	{Tag: "Dinosaur", Lists: []string{"dinosaurs"}},
	{Tag: "Disney", Lists: []string{"disneyCharacters", "disneyMovies", "disneyParks"}},
	{Tag: "Doctor", Lists: []string{"doctors"}},
	{Tag: "Dog", Lists: []string{"dogs"}},
	{Tag: "Dolphin", Lists: []string{"dolphins"}},
	{Tag: "Drinking", Lists: []string{"alcoholicDrinks", "alcohols", "beers", "coffees", "cokeProducts", "drinks", "pepsiProducts", "vodkas", "whiskeys", "wines"}},
	{Tag: "Drug", Lists: []string{"drugs"}},
	{Tag: "Drum", Lists: []string{"drums"}},
	{Tag: "Duck", Lists: []string{"ducks"}},
	{Tag: "Earth", Lists: []string{"earthScienceBranches"}},
	{Tag: "Egypt", Lists: []string{"pharaohs", "egyptianGods"}},
	{Tag: "Elephant", Lists: []string{"elephants"}},
	{Tag: "Fish", Lists: []string{"fishes", "sharks"}},
	{Tag: "Flower", Lists: []string{"flowers", "flowerParts"}},
	{Tag: "Fly", Lists: []string{"flies"}},
	{Tag: "Food", Lists: []string{"candies", "cheeses", "chocolates", "chocolates", "desserts", "food", "fruits", "pastas", "restaurants", "vegetables"}},
	{Tag: "Football", Lists: []string{"footballPlayers", "footballPositions", "footballTeams"}},
	{Tag: "Frog", Lists: []string{"frogs"}},
	{Tag: "Fruit", Lists: []string{"fruits"}},
	{Tag: "Furniture", Lists: []string{"furniture"}},
	{Tag: "Gambling", Lists: []string{"casinoGames"}},
	{Tag: "Game", Lists: []string{"boardGames", "cardGames", "games", "videoGames", "videoGameConsoles", "videoGameTypes"}},
	{Tag: "Game of Thrones", Lists: []string{"gameOfThronesCharacters", "gameOfThronesPlaces"}},
	{Tag: "Geometry", Lists: []string{"polyhedron"}},
	{Tag: "Glue", Lists: []string{"glues"}},
	{Tag: "Goat", Lists: []string{"goats"}},
	{Tag: "Golf", Lists: []string{"golfClubs", "golfPlayers", "golfTournaments"}},
	{Tag: "Gorilla", Lists: []string{"gorillas"}},
	{Tag: "Government", Lists: []string{"presidents"}},
	{Tag: "Grass", Lists: []string{"grasses"}},
	{Tag: "Groceries", Lists: []string{"groceryStores"}},
	{Tag: "Guitar", Lists: []string{"guitars"}},
	{Tag: "Gun", Lists: []string{"guns"}},
	{Tag: "Gym", Lists: []string{"gyms", "gymEquipment"}},
	{Tag: "Hardware", Lists: []string{"hardwares", "hardwareTools"}},
	{Tag: "Harry Potter", Lists: []string{"harryPotterBooks", "harryPotterCharacters", "harryPotterPlaces", "harryPotterSpells"}},
	{Tag: "Hawaii", Lists: []string{"hawaiianPlaces"}},
	{Tag: "Heart", Lists: []string{"heartParts"}},
	{Tag: "Heaven", Lists: []string{"heavens"}},
	{Tag: "Hell", Lists: []string{"hells"}},
	{Tag: "Hockey", Lists: []string{"hockeyPlayers", "hockeyPositions", "hockeyTeams"}},
	{Tag: "Holiday", Lists: []string{"holidays"}},
	{Tag: "Homeless", Lists: []string{"homelessPeople"}},
	{Tag: "Horse", Lists: []string{"horses", "horseRaces"}},
	{Tag: "Horse Racing", Lists: []string{"horseRaces"}},
	{Tag: "Kangaroo", Lists: []string{"kangaroos"}},
	{Tag: "King", Lists: []string{"kings"}},
	{Tag: "Koala", Lists: []string{"koalas"}},
	{Tag: "Internet", Lists: []string{"pornsites", "websites"}},
	{Tag: "Lion", Lists: []string{"lions"}},
	{Tag: "Lobster", Lists: []string{"lobsters"}},
	{Tag: "Lord of the Rings", Lists: []string{"lordOfTheRingsCharacters", "lordOfTheRingsPlaces"}},
	{Tag: "Magic", Lists: []string{"magicUsers"}},
	{Tag: "Mail", Lists: []string{"mailCarriers"}},
	{Tag: "Mammal", Lists: []string{"bears", "camels", "cats", "cows", "dogs", "dolphins", "goats", "gorillas", "horses", "kangaroos", "koalas", "lions", "mammals", "mice", "monkeys", "pigs", "rabbits", "rats", "whales"}},
	{Tag: "Makeup", Lists: []string{"makeups"}},
	{Tag: "Martial Arts", Lists: []string{"martialArts"}},
	{Tag: "Math", Lists: []string{"mathematicians", "mathBranches", "mathConcepts"}},
	{Tag: "McDonalds", Lists: []string{"mcDonaldsFood"}},
	{Tag: "Medicine", Lists: []string{"medicines"}},
	{Tag: "Mental Health", Lists: []string{"mentalIllnesses"}},
	{Tag: "Mice", Lists: []string{"mice"}},
	{Tag: "Microsoft", Lists: []string{"microsoftProducts"}},
	{Tag: "Middle East", Lists: []string{"countriesInTheMiddleEast"}},
	{Tag: "Money", Lists: []string{"creditCards", "currencies"}},
	{Tag: "Monkey", Lists: []string{"monkeys"}},
	{Tag: "Monster", Lists: []string{"monsters"}},
	{Tag: "Mushroom", Lists: []string{"mushrooms"}},
	{Tag: "Music", Lists: []string{"countryMusicSingers", "musicalGenres", "musicalInstruments", "musicalNotes", "musicalTempos", "musicians", "rappers"}},
	{Tag: "Ninja", Lists: []string{"ninjaWeapons"}},
	{Tag: "Ocean", Lists: []string{"crustaceans", "fishes", "oceans", "sharks"}},
	{Tag: "Painkiller", Lists: []string{"painkillers"}},
	{Tag: "Panties", Lists: []string{"panties"}},
	{Tag: "Parrot", Lists: []string{"parrots"}},
	{Tag: "Pasta", Lists: []string{"pastas"}},
	{Tag: "Penguin", Lists: []string{"penguins"}},
	{Tag: "Pepsi", Lists: []string{"pepsiProducts"}},
	{Tag: "Pharmacy", Lists: []string{"drugstores"}},
	{Tag: "Philosophy", Lists: []string{"philosophers"}},
	{Tag: "Photography", Lists: []string{"cameras"}},
	{Tag: "Physics", Lists: []string{"physicists", "physicsBranches", "physicsConcepts"}},
	{Tag: "Piano", Lists: []string{"pianos"}},
	{Tag: "Pig", Lists: []string{"pigs", "porks"}},
	{Tag: "Pizza", Lists: []string{"pizzas", "pizzaRestaurants"}},
	{Tag: "Planet", Lists: []string{"planets"}},
	{Tag: "Plant", Lists: []string{"fruits", "plants", "plantParts", "trees", "treeParts", "vegetables"}},
	{Tag: "Playing Cards", Lists: []string{"cardGames", "pokerHands"}},
	{Tag: "Poetry", Lists: []string{"poems", "poets"}},
	{Tag: "Poison", Lists: []string{"poisons"}},
	{Tag: "Pokemon", Lists: []string{"pokemon", "pokemonCities"}},
	{Tag: "Poker", Lists: []string{"pokerHands"}},
	{Tag: "Politics", Lists: []string{"politicians", "presidents"}},
	{Tag: "Porn", Lists: []string{"pornsites"}},
	{Tag: "Pork", Lists: []string{"porks"}},
	{Tag: "President", Lists: []string{"presidents"}},
	{Tag: "Programming", Lists: []string{"programmingLanguages"}},
	{Tag: "Protestant", Lists: []string{"baptists", "protestants"}},
	{Tag: "Psychic", Lists: []string{"psychics", "psychicAbilities"}},
	{Tag: "Psychology", Lists: []string{"psychologists"}},
	{Tag: "Puzzle", Lists: []string{"puzzles"}},
	{Tag: "Queen", Lists: []string{"queens"}},
	{Tag: "Rabbit", Lists: []string{"rabbits"}},
	{Tag: "Racing", Lists: []string{"carRaces", "horseRaces"}},
	{Tag: "Racist", Lists: []string{"racialSlurs"}},
	{Tag: "Rap", Lists: []string{"rappers"}},
	{Tag: "Rat", Lists: []string{"rats"}},
	{Tag: "Religion", Lists: []string{"religions"}},
	{Tag: "Renewable Energy", Lists: []string{"renewableEnergies"}},
	{Tag: "Reptile", Lists: []string{"alligators", "caimans", "crocodiles", "dinosaurs", "reptiles", "snakes", "turtles"}},
	{Tag: "Restaurant", Lists: []string{"pizzaRestaurants", "restaurants", "restaurantTypes"}},
	{Tag: "River", Lists: []string{"rivers"}},
	{Tag: "Science", Lists: []string{"astronomers", "astrophysicists", "biologists", "chemists", "chemistryTools", "computerScientists", "mathematicians", "physicists", "scientists", "scienceBranches", "scienceConcepts", "scienceInstruments"}},
	{Tag: "Sex", Lists: []string{"sexCategories", "stds"}},
	{Tag: "Sex Toy", Lists: []string{"sexToys"}},
	{Tag: "Shark", Lists: []string{"sharks"}},
	{Tag: "Sheep", Lists: []string{"sheeps"}},
	{Tag: "Shoe", Lists: []string{"shoeBrands", "shoeTypes"}},
	{Tag: "Shrimp", Lists: []string{"shrimps"}},
	{Tag: "Sick", Lists: []string{"sicknesses"}},
	{Tag: "Skateboarding", Lists: []string{"skateboardTricks"}},
	{Tag: "Skirt", Lists: []string{"skirts"}},
	{Tag: "Skunk", Lists: []string{"skunks"}},
	{Tag: "Snail", Lists: []string{"snails"}},
	{Tag: "Snake", Lists: []string{"snakes"}},
	{Tag: "Soccer", Lists: []string{"soccerPlayers", "soccerPositions", "soccerTeams"}},
	{Tag: "Sock", Lists: []string{"socks"}},
	{Tag: "Soda", Lists: []string{"cokeProducts", "pepsiProducts"}},
	{Tag: "Software", Lists: []string{"software", "softwareTypes"}},
	{Tag: "Space", Lists: []string{"astronauts", "astronomers", "astrophysicists", "starTypes"}},
	{Tag: "Spider", Lists: []string{"spiders"}},
	{Tag: "Sport", Lists: []string{"baseballPlayers", "baseballPositions", "baseballTeams", "basketballPlayers", "basketballPositions", "basketballTeams", "boxers", "footballPlayers", "footballPositions", "footballTeams", "golfClubs", "golfPlayers", "golfTournaments", "hockeyPlayers", "hockeyPositions", "hockeyTeams", "soccerPlayers", "soccerPositions", "soccerTeams", "sports", "swimmers", "swimmingStrokes", "tennisPlayers", "volleyballPlayers", "volleyballPositions", "wrestlers", "wrestlingMoves"}},
	{Tag: "Star Trek", Lists: []string{"starTrekCharacters", "starTrekPlaces", "starTrekRaces", "starTrekTitles"}},
	{Tag: "Star Wars", Lists: []string{"starWarsCharacters", "starWarsPlaces", "starWarsRaces", "starWarsTitles"}},
	{Tag: "Superhero", Lists: []string{"superheroes", "superpowers"}},
	{Tag: "Supermarket", Lists: []string{"supermarkets"}},
	{Tag: "Surgery", Lists: []string{"surgeries"}},
	{Tag: "Swimming", Lists: []string{"swimmers", "swimmingStrokes"}},
	{Tag: "Television", Lists: []string{"actors", "gameOfThronesCharacters", "gameOfThronesPlaces", "harryPotterBooks", "harryPotterCharacters", "harryPotterPlaces", "harryPotterSpells", "lordOfTheRingsCharacters", "lordOfTheRingsPlaces", "starTrekCharacters", "starTrekPlaces", "starTrekRaces", "starTrekTitles", "starWarsCharacters", "starWarsPlaces", "starWarsRaces", "starWarsTitles", "televisionCharacters", "televisionShows", "televisionShowTypes", "theSimpsonsCharacters", "toyStoryCharacters", "transformersCharacters", "movies", "disneyMovies"}},
	{Tag: "Tennis", Lists: []string{"tennisPlayers"}},
	{Tag: "The Beatles", Lists: []string{"theBeatles"}},
	{Tag: "The Simpsons", Lists: []string{"theSimpsonsCharacters"}},
	{Tag: "Toad", Lists: []string{"toads"}},
	{Tag: "Toy Story", Lists: []string{"toyStoryCharacters"}},
	{Tag: "Transformers", Lists: []string{"transformersCharacters"}},
	{Tag: "Tree", Lists: []string{"trees", "treeParts"}},
	{Tag: "Turkey", Lists: []string{"turkeys"}},
	{Tag: "Turtle", Lists: []string{"turtles"}},
	{Tag: "United Kingdom", Lists: []string{"countriesInTheUnitedKingdom"}},
	{Tag: "United States", Lists: []string{"unitedStates"}},
	{Tag: "Vacuum", Lists: []string{"vacuums"}},
	{Tag: "Vegetable", Lists: []string{"vegetables"}},
	{Tag: "Video Game", Lists: []string{"videoGames", "videoGameConsoles", "videoGameTypes"}},
	{Tag: "Viking", Lists: []string{"norseGods", "norseRealms"}},
	{Tag: "Virus", Lists: []string{"viruses"}},
	{Tag: "Vodka", Lists: []string{"vodkas"}},
	{Tag: "Volleyball", Lists: []string{"volleyballPlayers", "volleyballPositions"}},
	{Tag: "Water", Lists: []string{"oceans", "waterBodies"}},
	{Tag: "Weather", Lists: []string{"weatherTypes"}},
	{Tag: "Whale", Lists: []string{"whales"}},
	{Tag: "Whiskey", Lists: []string{"whiskeys"}},
	{Tag: "Wine", Lists: []string{"wines"}},
	{Tag: "Wrestling", Lists: []string{"wrestlers", "wrestlingMoves"}},
	{Tag: "Writing", Lists: []string{"authors", "books", "poems", "poets"}},
}
