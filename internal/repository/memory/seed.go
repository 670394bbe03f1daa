package memory

import (
	"fmt"

	"xmasGiftAI/domain"
)

type seedDeal struct {
	title, description   string
	price, originalPrice float64
	discount             int
	category             domain.DealCategory
}

var giftCatalog = []seedDeal{
	{"Cuffie Gaming Wireless RGB", "Cuffie over-ear con microfono removibile, audio surround 7.1 e luci RGB per lunghe sessioni di gioco", 79.99, 129.99, 38, domain.CategoryElectronics},
	{"Smartwatch Sport GPS", "Smartwatch con GPS integrato, cardiofrequenzimetro e oltre 100 modalità sportive", 149.00, 199.00, 25, domain.CategoryElectronics},
	{"Tastiera Meccanica Compatta", "Tastiera meccanica 75% con switch hot-swap, ideale per programmatori e gamer", 69.90, 99.90, 30, domain.CategoryElectronics},
	{"Mini Proiettore Portatile", "Proiettore LED Full HD con altoparlante integrato per serate cinema in casa", 119.00, 170.00, 30, domain.CategoryElectronics},
	{"Speaker Bluetooth Impermeabile", "Speaker portatile IPX7 con 20 ore di autonomia e bassi potenti", 39.99, 59.99, 33, domain.CategoryElectronics},
	{"Set Skincare Viso Idratante", "Kit con detergente, siero alla vitamina C e crema idratante per tutti i tipi di pelle", 34.90, 49.90, 30, domain.CategoryBeauty},
	{"Palette Ombretti Nude", "Palette con 18 ombretti opachi e shimmer dai toni caldi, lunga tenuta", 24.00, 32.00, 25, domain.CategoryBeauty},
	{"Profumo Donna Eau de Parfum 50ml", "Fragranza floreale e fruttata con note di gelsomino e pesca", 59.00, 89.00, 34, domain.CategoryBeauty},
	{"Set Rossetti Matte", "Quattro rossetti a lunga durata dal finish matte, formula idratante", 19.90, 29.90, 33, domain.CategoryBeauty},
	{"Lampada Smart LED", "Lampada da tavolo smart con 16 milioni di colori, controllabile da app e assistente vocale", 29.99, 44.99, 33, domain.CategoryHome},
	{"Robot Aspirapolvere", "Robot aspirapolvere con mappatura intelligente, ideale per la pulizia quotidiana della casa", 199.00, 299.00, 33, domain.CategoryHome},
	{"Diffusore di Aromi", "Diffusore ad ultrasuoni con luci soft e timer, perfetto per camera da letto e soggiorno", 27.50, 39.00, 29, domain.CategoryHome},
	{"Coperta in Pile Morbida", "Coperta calda e morbida 150x200 cm, perfetta per il divano nelle sere d'inverno", 22.00, 30.00, 27, domain.CategoryHome},
	{"Set Costruzioni Castello", "Set di costruzioni da 1200 pezzi per bambini dagli 8 anni, stimola creatività e manualità", 49.99, 69.99, 29, domain.CategoryToys},
	{"Puzzle 1000 Pezzi Natale", "Puzzle natalizio da 1000 pezzi con paesaggio innevato, ideale da fare in famiglia", 14.99, 19.99, 25, domain.CategoryToys},
	{"Kit Laboratorio Scienza", "Kit educativo con 30 esperimenti di chimica e fisica per giovani scienziati", 29.90, 39.90, 25, domain.CategoryToys},
	{"Dinosauro Robot Telecomandato", "Dinosauro interattivo che cammina, ruggisce e si illumina, telecomando incluso", 44.90, 59.90, 25, domain.CategoryToys},
	{"Sneakers Running Uomo", "Scarpe da corsa leggere con suola ammortizzata e tomaia traspirante", 79.00, 110.00, 28, domain.CategoryFashion},
	{"Zaino Urbano Impermeabile", "Zaino con scomparto per laptop da 15 pollici, porta USB e tessuto idrorepellente", 45.00, 60.00, 25, domain.CategoryFashion},
	{"Sciarpa e Beanie in Lana", "Set invernale con sciarpa e cappello beanie in lana merino, unisex", 29.00, 39.00, 26, domain.CategoryFashion},
	{"Giacca Piumino Leggera", "Piumino leggero e compatto, ripiegabile nella sua custodia, ideale per viaggi", 89.00, 149.00, 40, domain.CategoryFashion},
}

// SeedDeals returns the built-in gift catalog with sequential ids starting at 1.
func SeedDeals() []domain.Deal {
	deals := make([]domain.Deal, 0, len(giftCatalog))
	for i, s := range giftCatalog {
		id := uint64(i + 1)
		deals = append(deals, domain.Deal{
			ID:            id,
			Title:         s.title,
			Description:   s.description,
			Price:         s.price,
			OriginalPrice: s.originalPrice,
			Discount:      s.discount,
			Category:      s.category,
			ImageURL:      fmt.Sprintf("https://images.example.com/deals/%d.jpg", id),
			URL:           fmt.Sprintf("https://example.com/deals/%d", id),
		})
	}
	return deals
}
