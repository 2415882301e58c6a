package catalog

// Default returns the built-in sample catalog used when no catalog file is
// configured. Content mirrors the temple's published 2024 programme.
func Default() *Catalog {
	c := &Catalog{
		Festivals: []Event{
			{
				ID:          "1",
				Title:       "Janmashtami Festival",
				Date:        "2024-08-26",
				Description: "Honouring the birth of Lord Krishna with bhajans, fasting, and midnight celebrations.",
			},
			{
				ID:          "2",
				Title:       "Navaratri Celebrations",
				Date:        "2024-10-03",
				Description: "Nine nights of devotion to the Goddess. Garba, Dandiya, and daily special aartis.",
			},
			{
				ID:          "3",
				Title:       "Deepavali Charity Program",
				Date:        "2024-11-01",
				Description: "The festival of lights. Spreading light through service and community anna daan.",
			},
			{
				ID:          "4",
				Title:       "Maha Shivratri",
				Date:        "2024-03-08",
				Description: "All-night vigil and prayers dedicated to Lord Shiva.",
			},
			{
				ID:          "5",
				Title:       "Holi Celebration",
				Date:        "2024-03-25",
				Description: "Festival of colors, community gathering, and bhajans.",
			},
			{
				ID:          "6",
				Title:       "Ram Navami",
				Date:        "2024-04-17",
				Description: "Celebrating the birth of Lord Rama with recitals and procession.",
			},
			{
				ID:          "7",
				Title:       "Dussehra",
				Date:        "2024-10-12",
				Description: "Victory of good over evil, celebrated with Ravan Dahan.",
			},
		},
		Services: []PoojaService{
			{
				ID:          "1",
				Title:       "Ganesh Abhishek",
				Description: "A ritual bathing of Lord Ganesha to remove obstacles and seek wisdom.",
				Duration:    "45 Mins",
				Price:       51,
				Image:       "https://picsum.photos/seed/ganesh/400/300",
			},
			{
				ID:          "2",
				Title:       "Satyanarayan Katha",
				Description: "A storytelling ritual performed for general well-being and prosperity.",
				Duration:    "2 Hours",
				Price:       101,
				Image:       "https://picsum.photos/seed/fire/400/300",
			},
			{
				ID:          "3",
				Title:       "Navagraha Shanti",
				Description: "Pacify the nine planets to bring harmony and reduce negative influences.",
				Duration:    "1.5 Hours",
				Price:       151,
				Image:       "https://picsum.photos/seed/planets/400/300",
			},
			{
				ID:          "4",
				Title:       "Vahan Pooja",
				Description: "Blessing ceremony for a new vehicle to ensure safety and longevity.",
				Duration:    "30 Mins",
				Price:       31,
				Image:       "https://picsum.photos/seed/car/400/300",
			},
		},
		Slides: []Slide{
			{
				ID:       1,
				Image:    "https://picsum.photos/seed/templehero/1920/1080",
				Title:    "Lakshmi Narayan Temple",
				Subtitle: "A sacred space where ancient traditions and heartfelt devotion come together.",
			},
			{
				ID:       2,
				Image:    "https://picsum.photos/seed/festival2024/1920/1080",
				Title:    "Celebrate Divine Moments",
				Subtitle: "Immerse yourself in the joy of our vibrant festivals and ancient rituals.",
			},
			{
				ID:       3,
				Image:    "https://picsum.photos/seed/seva2024/1920/1080",
				Title:    "Service is Devotion",
				Subtitle: "Join our growing spiritual family through Seva and compassion.",
			},
		},
		Gallery: []GalleryImage{
			{ID: "g1", Image: "https://picsum.photos/seed/aarti/600/400", Caption: "Evening Aarti"},
			{ID: "g2", Image: "https://picsum.photos/seed/garba/600/400", Caption: "Garba Night"},
			{ID: "g3", Image: "https://picsum.photos/seed/diyas/600/400", Caption: "Deepavali Diyas"},
			{ID: "g4", Image: "https://picsum.photos/seed/prasad/600/400", Caption: "Anna Daan Seva"},
			{ID: "g5", Image: "https://picsum.photos/seed/mandir/600/400", Caption: "Temple Hall"},
			{ID: "g6", Image: "https://picsum.photos/seed/rangoli/600/400", Caption: "Festival Rangoli"},
		},
	}
	// Defaults are authored in-repo; a validation failure here is a bug.
	if err := c.validate(); err != nil {
		panic(err)
	}
	return c
}
