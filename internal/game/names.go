package game

var horseNames = []string{
	"Abbey", "Ace", "Aesop", "Afrika", "Aggie", "Ajax", "Alpha", "Alfie", "Ali", "Aladdin", "Alibaba",
	"Bishop", "Birdie", "Blossom", "Bo", "Boaz", "Bodhi", "Bogart", "Bonnie", "Booker", "Boomer", "Boon",
	"Clyde", "Cochise", "Coco", "Cocolo", "Cole", "Conan", "Concho", "Cookie", "Cooper", "Casper", "Cecil", "Champ", "Chance", "Charcoal",
	"Dollar", "Dolly", "Dominic", "Dominator", "Dora", "Dorado", "Drake", "Dream", "Dreamer", "Drifter", "Duce", "Duchess", "Duke", "Dunny", "Durango", "Duster", "Dusty",
	"Easter", "Ebony", "Echo", "Eclipse", "Eddie", "Eldorado", "Eleazar", "Eli", "Elixir", "Ellie", "Elvis", "Ember", "Epona", "Esperanza", "Esteban", "Excalibur",
	"Fancy", "Fargo", "Felise", "Festus", "Fiddle", "Fifty", "Fiona",
	"Gracie", "Grit", "Guapo", "Gucci", "Gulliver", "Gunner", "Gus", "Gypsy",
	"Houdini", "Howdy", "Huck", "Huckleberry", "Huey", "Hurricane",
	"Kansas", "Kate", "Katy", "Brown", "Keisha", "Kemosabe", "Keno", "Kendra",
	"Lacey", "Lady", "Lakota", "Legend", "Legacy", "Lena", "Levi", "Leo", "Lexy", "Liberty",
	"Money", "Montana", "Monty", "Moon", "Moondance", "Moonshine", "Moose", "Mordecai", "Morgan", "Moxie", "Mystic", "Mystery",
	"Nacho", "Nala", "Natacha", "Navajo", "Nemo", "Neptune", "Nero", "Nevada", "Night", "Niner", "Nyx",
	"Oliver", "Ollie", "Oncore", "Onyx", "Opal", "Oreo", "Outlaw", "Ozzy",
	"Paco", "Pablo", "Paige", "Paisley", "Panama", "Pandora", "Papoose", "Paprika", "Partner", "Patches",
	"Queball", "Queen", "Queenie", "Quervo", "Quest", "Quincy",
	"Rojo", "Rolly", "Roman", "Rono", "Rooster", "Rounder", "Rowdy", "Rowen", "Roy", "Ruby", "Rumi", "Rumor", "Rustler", "Rusty", "Ruth",
	"Sabino", "Sabrina", "Sage", "Sahara", "Sailor", "Saint", "Sally", "Salty", "Sammy", "Sampson", "Sandy", "Sargent", "Sassy", "Savanna", "Scamper", "Scarlet",
	"Travis", "Treasure", "Trevor", "Trickster", "Trigger", "Trinket", "Troubadour", "Trucker", "Trusty", "Tucker", "Tuff", "Turbo", "Twister", "Ty",
	"Umber", "Ulysses", "Uno", "Utah",
	"Val", "Van Gogh", "Vargas", "Vegas", "Venus", "Vesta", "Victory",
	"Willard", "Willie", "Willow", "Winchester", "Windy", "Wing", "Winston", "Winter", "Wolf", "Wrangler",
	"Xavier",
	"Yakama", "Yankie", "Yeller", "Yeti", "Yoda", "Yonkers",
	"Zahara", "Zara", "Zelda", "Zenia", "Zia", "Zipper", "Zodiac", "Zoe", "Zoey", "Zoro", "Zeus", "Zuza",
}

var jockeyFirstNames = []string{
	"Afonso", "Beatriz", "Carlos", "Diogo", "Duarte", "Francisca", "Gonçalo", "Inês",
	"João", "Leonor", "Mafalda", "Miguel", "Nuno", "Rita", "Rodrigo", "Rui", "Tomás", "Vasco",
}

var jockeyLastNames = []string{
	"Almeida", "Barros", "Costa", "Ferreira", "Gomes", "Lima", "Lopes", "Marques",
	"Martins", "Mendes", "Pereira", "Pinto", "Ribeiro", "Santos", "Silva", "Sousa",
}
