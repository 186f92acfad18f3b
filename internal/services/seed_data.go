package services

import "github.com/coloringbook/backend/internal/models"

// samplePages is the fixed set of coloring pages inserted by the seed routine.
// Each record goes through the normal creation path and receives its own
// generated id and timestamp.
var samplePages = []models.CreateColoringPageRequest{
	{
		Name:       "Cute Cat",
		Category:   "animals",
		Difficulty: "medium",
		SVGContent: "<svg viewBox='0 0 300 300' xmlns='http://www.w3.org/2000/svg'><circle cx='150' cy='120' r='60' fill='none' stroke='black' stroke-width='3'/><circle cx='130' cy='110' r='5' fill='black'/><circle cx='170' cy='110' r='5' fill='black'/><path d='M140 130 Q150 140 160 130' stroke='black' stroke-width='2' fill='none'/><circle cx='120' cy='80' r='15' fill='none' stroke='black' stroke-width='3'/><circle cx='180' cy='80' r='15' fill='none' stroke='black' stroke-width='3'/><rect x='140' y='180' width='20' height='40' fill='none' stroke='black' stroke-width='3'/><ellipse cx='100' cy='200' rx='15' ry='8' fill='none' stroke='black' stroke-width='3'/><ellipse cx='200' cy='200' rx='15' ry='8' fill='none' stroke='black' stroke-width='3'/><path d='M145 260 Q150 280 155 260' stroke='black' stroke-width='3' fill='none'/></svg>",
	},
	{
		Name:       "Fast Car",
		Category:   "vehicles",
		Difficulty: "medium",
		SVGContent: "<svg viewBox='0 0 300 200' xmlns='http://www.w3.org/2000/svg'><rect x='50' y='80' width='200' height='60' rx='10' fill='none' stroke='black' stroke-width='3'/><rect x='80' y='60' width='140' height='30' rx='5' fill='none' stroke='black' stroke-width='3'/><circle cx='100' cy='160' r='20' fill='none' stroke='black' stroke-width='3'/><circle cx='200' cy='160' r='20' fill='none' stroke='black' stroke-width='3'/><rect x='60' y='100' width='30' height='20' rx='3' fill='none' stroke='black' stroke-width='2'/><rect x='210' y='100' width='30' height='20' rx='3' fill='none' stroke='black' stroke-width='2'/></svg>",
	},
	{
		Name:       "Pretty Flower",
		Category:   "nature",
		Difficulty: "medium",
		SVGContent: "<svg viewBox='0 0 300 300' xmlns='http://www.w3.org/2000/svg'><circle cx='150' cy='150' r='20' fill='none' stroke='black' stroke-width='3'/><ellipse cx='150' cy='100' rx='15' ry='30' fill='none' stroke='black' stroke-width='3'/><ellipse cx='150' cy='200' rx='15' ry='30' fill='none' stroke='black' stroke-width='3'/><ellipse cx='100' cy='150' rx='30' ry='15' fill='none' stroke='black' stroke-width='3'/><ellipse cx='200' cy='150' rx='30' ry='15' fill='none' stroke='black' stroke-width='3'/><line x1='150' y1='250' x2='150' y2='200' stroke='black' stroke-width='4'/><path d='M130 220 Q140 210 150 220' stroke='black' stroke-width='2' fill='none'/><path d='M170 220 Q160 210 150 220' stroke='black' stroke-width='2' fill='none'/></svg>",
	},
}

// sampleStickers is the fixed set of stickers inserted by the seed routine
var sampleStickers = []struct {
	name       string
	category   string
	svgContent string
}{
	{
		name:       "Star",
		category:   "shapes",
		svgContent: "<svg viewBox='0 0 60 60' xmlns='http://www.w3.org/2000/svg'><polygon points='30,5 35,20 50,20 38,30 42,45 30,37 18,45 22,30 10,20 25,20' fill='yellow' stroke='orange' stroke-width='2'/></svg>",
	},
	{
		name:       "Heart",
		category:   "shapes",
		svgContent: "<svg viewBox='0 0 60 60' xmlns='http://www.w3.org/2000/svg'><path d='M30,45 C20,35 5,25 15,15 C25,5 30,15 30,15 C30,15 35,5 45,15 C55,25 40,35 30,45z' fill='red' stroke='darkred' stroke-width='2'/></svg>",
	},
	{
		name:       "Smiley Face",
		category:   "emoji",
		svgContent: "<svg viewBox='0 0 60 60' xmlns='http://www.w3.org/2000/svg'><circle cx='30' cy='30' r='25' fill='yellow' stroke='orange' stroke-width='2'/><circle cx='22' cy='25' r='3' fill='black'/><circle cx='38' cy='25' r='3' fill='black'/><path d='M20 35 Q30 45 40 35' stroke='black' stroke-width='3' fill='none'/></svg>",
	},
}
