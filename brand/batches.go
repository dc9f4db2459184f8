package brand

// Курируемые партии справочника. Порядок партий фиксирован: более поздние
// дополняют ранние. Канонические названия — в верхнем регистре, алиасы — в
// нижнем.

var baseBatch = Batch{
	Brands: []string{
		"10 AVENUE", "100BON", "12 PARFUMEURS FRANCAIS", "SUPREME 24K",
		"27 87", "4711 WUNDERWASSER", "ABERCROMBIE & FITCH",
		"ACQUA DI PARMA", "ACQUA DI STRESA", "ADIDAS", "AESOP", "AFNAN",
		"AGENT PROVOCATEUR", "AJMAL", "AKRO", "AL HARAMAIN",
		"ALEXANDER MCQUEEN", "ALEXANDRE J.", "AMOUAGE", "ANGEL SCHLESSER",
		"ANNA SUI", "ANTONIO BANDERAS", "ARABESQUE", "ARABIAN OUD",
		"ARAMIS", "ARMAND BASI", "ARMANI", "ATELIER COLOGNE",
		"ATELIER MATERI", "ATKINSONS", "ATTAR COLLECTION", "AZZARO",
		"BALDESSARINI", "BALDININI", "BALENCIAGA", "BALMAIN",
		"BANANA REPUBLIC", "BDK", "BLEND OUD", "BOADICEA THE VICTORIOUS",
		"BOIS 1920", "BOTTEGA VENETA", "BOUCHERON", "BRIONI",
		"BRITNEY SPEARS", "BRUNO BANANI", "BUGATTI", "BURBERRY", "BVLGARI",
		"BYREDO", "CACHAREL", "CALVIN KLEIN", "CARNER BARCELONA",
		"CAROLINA HERRERA", "CARON", "CARTIER", "CERRUTI", "CHANEL",
		"CHLOE", "CHOPARD", "CHRISTIAN DIOR", "CHRISTIAN LACROIX",
		"CHRISTIAN LOUBOUTIN", "CLINIQUE", "CLIVE CHRISTIAN", "COACH",
		"COMME DES GARCONS", "COTY", "CREED", "DAVIDOFF", "DIESEL",
		"DIPTYQUE", "DOLCE & GABBANA", "DONNA KARAN", "DSQUARED2",
		"DUNHILL", "DUPONT", "ED HARDY", "EIGHT & BOB", "EISENBERG",
		"ELIE SAAB", "ELIZABETH ARDEN", "ELIZABETH TAYLOR",
		"ESCADA", "ESCENTRIC MOLECULES", "ESSENTIAL PARFUMS",
		"ESTEE LAUDER", "ETAT LIBRE D`ORANGE", "EX NIHILO", "FENDI",
		"FERRAGAMO", "FERRE", "FLORIS", "FRANCK BOCLET", "FRANCK MULLER",
		"FRANCK OLIVIER", "FRAPIN", "FREDERIC MALLE", "FURLA",
		"GIAN MARCO VENTURI", "GIANFRANCO FERRE", "GIARDINO BENESSERE",
		"GIORGIO ARMANI", "GIVENCHY", "GOLDFIELD & BANKS", "GRES",
		"GRITTI", "GUCCI", "GUERLAIN", "GUESS", "GUY LAROCHE",
		"HACKETT LONDON", "HANAE MORI", "HAUTE FRAGRANCE COMPANY",
		"HERMES", "HERMETICA", "HUGO BOSS", "ICEBERG", "ILLUMINUM",
		"INITIO", "ISSEY MIYAKE", "JACOMO", "JACQUES BOGART",
		"JAMES BOND 007", "JEAN PATOU", "JEAN PAUL GAULTIER",
		"JENNIFER LOPEZ", "JIL SANDER", "JIMMY CHOO", "JO MALONE",
		"JOHN RICHMOND", "JOHN VARVATOS", "JOOP!", "JUICY COUTURE",
		"JULIETTE HAS A GUN", "KARL LAGERFELD", "KENZO", "KILIAN",
		"KITON", "KORLOFF PARIS", "L'ARTISAN PARFUMEUR", "LA PERLA",
		"LACOSTE", "LADY GAGA", "LALIQUE", "LANCOME", "LANVIN", "LATTAFA",
		"LAURA BIAGIOTTI", "LE LABO", "LIQUIDES IMAGINAIRES", "LOEWE",
		"LOLITA LEMPICKA", "LOUIS VUITTON", "M.INT", "MAISON CRIVELLI",
		"MAISON FRANCIS KURKDJIAN", "MAISON MARGIELA",
		"MAISON MARTIN MARGIELA", "MAISON MICALLEF", "MANCERA",
		"MANDARINA DUCK", "MARC ANTOINE BARROIS", "MARC JACOBS",
		"MARINA DE BOURBON", "MASAKI MATSUSHIMA", "MAUBOUSSIN", "MAX MARA",
		"MEMO", "MEXX", "MICHAEL KORS", "MISSONI", "MIU MIU", "MIZENSIR",
		"MOLECULE", "MOLINARD", "MONCLER", "MONT BLANC", "MONTALE",
		"MORESQUE", "MOSCHINO", "MUGLER", "NAN", "NAOMI CAMPBELL",
		"NARCISO RODRIGUEZ", "NASOMATTO", "NINA RICCI", "NOBILE 1942",
		"NORAN PERFUMES", "OJAR", "OLFACTIVE STUDIO", "ORMONDE JAYNE",
		"ORTO PARISI", "OSCAR DE LA RENTA", "PACO RABANNE",
		"PALOMA PICASSO", "PARFUMS DE MARLY", "PARFUMS DUSITA",
		"PARIS HILTON", "PARLE MOI DE PARFUM", "PENHALIGON'S",
		"PEPE JEANS", "PHILIPP PLEIN", "POLICE", "PRADA", "PROFUMUM ROMA",
		"PUREDISTANCE", "RALPH LAUREN", "RANCE 1795", "RASASI",
		"REMY LATOUR", "REPLAY", "ROBERTO CAVALLI", "ROCHAS", "ROJA DOVE",
		"ROOM 1015", "ROYAL CROWN", "S.T. DUPONT", "SALVADOR DALI",
		"SARAH JESSICA PARKER", "SERGE LUTENS", "SERGIO TACCHINI",
		"SHAIK", "SHAKIRA", "SHISEIDO", "SISLEY", "SONIA RYKIEL",
		"SOSPIRO PERFUMES", "STELLA MCCARTNEY", "STERLING PARFUMS ARMAF",
		"SWISS ARABIAN", "TED LAPIDUS", "TEATRO FRAGRANZE",
		"THE DIFFERENT COMPANY", "THE HOUSE OF OUD",
		"THE MERCHANT OF VENICE", "THOMAS KOSMALA", "TIFFANY",
		"TIZIANA TERENZI", "TOM FORD", "TOMMY HILFIGER", "TRUSSARDI",
		"ULRIC DE VARENS", "V CANTO", "VALENTINO", "VAN CLEEF & ARPELS",
		"VAN GILS", "VERA WANG", "VERSACE", "VERTUS", "VICTORIA'S SECRET",
		"VIKTOR & ROLF", "VILHELM PARFUMERIE",
		"WHAT WE DO IS SECRET (A LAB ON FIRE)", "WOMEN'SECRET", "XERJOFF",
		"YOHJI YAMAMOTO", "YVES ROCHER", "YVES SAINT LAURENT",
		"ZADIG & VOLTAIRE", "ZARKOPERFUME", "ZIELINSKI & ROZEN", "ZIMAYA",
		"ZLATAN IBRAHIMOVIC", "НОВАЯ ЗАРЯ", "ОСТАЛЬНОЕ", "ПАКЕТЫ",
	},
	Synonyms: map[string][]string{
		"100BON":                 {"100bon", "100 bon"},
		"12 PARFUMEURS FRANCAIS": {"12 parfumeurs francais", "12 parfumeurs"},
		"27 87":                  {"2787 perfumes"},
		"DUNHILL":                {"a.dunhill"},
		"ABERCROMBIE & FITCH":    {"abercrombie&fitch", "abercrombie fitch"},
		"ALEXANDRE J.":           {"alexandre.j the collector", "alexandre j", "alexandre.j", "alexande j", "alexander j"},
		"ANTONIO BANDERAS":       {"a. banderas", "a.banderas", "ant. banderas", "a banderas"},
		"STERLING PARFUMS ARMAF": {"armaf", "(sterling parfums)", "sterling parfums"},
		"ARMAND BASI":            {"a. basi", "a.basi"},
		"ARMANI":                 {"emporio armani"},
		"BURBERRY":               {"burberrys"},
		"CALVIN KLEIN":           {"ck", "c.k."},
		"CAROLINA HERRERA":       {"c.h."},
		"CACHAREL":               {"amor amor (cacharel)"},
		"CHRISTIAN DIOR":         {"c.dior", "dior", "c. dior", "c.d.", "cd", "dior cd"},
		"DOLCE & GABBANA":        {"d&g", "dolce&gabbana", "dolce and gabbana", "dolce gabbana", "d & g", "dg", "dolce  gabbana"},
		"DONNA KARAN":            {"dkny", "d.karan", "donna karan dkny"},
		"ELIZABETH ARDEN":        {"arden"},
		"ETAT LIBRE D`ORANGE":    {"etat libre d'orange", "etat libre", "etat libre d orange", "etat libre d*orange"},
		"FERRAGAMO":              {"salvatore ferragamo", "ferragamo salvatore", "s. ferragamo", "salvatore", "s.ferragamo", "salvat.ferr."},
		"GIORGIO ARMANI":         {"g.armani", "g. armani", "giorgio amani"},
		"GRITTI":                 {"dr. gritti"},
		"GIAN MARCO VENTURI":     {"gmv"},
		"GIARDINO BENESSERE":     {"giardino benessere (t.terenzi)"},
		"GOLDFIELD & BANKS":      {"goldfield banks"},
		"HUGO BOSS":              {"boss", "hb boss", "hb", "boss hugo"},
		"JENNIFER LOPEZ":         {"j.lo", "jlo", "j. lopez", "j.lopez", "jennifer lopes"},
		"MAISON MICALLEF":        {"m. micallef", "m.micallef"},
		"MARINA DE BOURBON":      {"m. de bourbon"},
		"MASAKI MATSUSHIMA":      {"m. matsushima masaki", "m. matsushima"},
		"MUGLER":                 {"thierry mugler", "therry mugler", "t.mugler", "t. mugler"},
		"NAOMI CAMPBELL":         {"n.campbell"},
		"PACO RABANNE":           {"paco rabbanne", "p.r.", "paco rabbane"},
		"SALVADOR DALI":          {"s.dali", "sd"},
		"SUPREME 24K":            {"supreme 24k", "24 k supreme", "24k supreme", "supreme 24 k"},
		"VAN CLEEF & ARPELS":     {"van cleef", "vca"},
		"VICTORIA'S SECRET":      {"victorias secret"},
		"VIKTOR & ROLF":          {"viktor&rolf", "viktor and rolf", "v&r", "v&r flowerbomb"},
		"VILHELM PARFUMERIE":     {"vilhelm"},
		"WOMEN'SECRET":           {"women' secret"},
		"WHAT WE DO IS SECRET (A LAB ON FIRE)": {"a lab on fire"},
		"XERJOFF":            {"xj"},
		"YVES SAINT LAURENT": {"ysl", "y.saint laurent", "y.saint-laurent"},
		"YOHJI YAMAMOTO":     {"yohjii yamamoto", "yohji"},
		"ZADIG & VOLTAIRE":   {"zadig & voltair", "zadig&voltaire", "zadig"},
		"ZLATAN IBRAHIMOVIC": {"zlatan", "ibrahimovic"},
	},
}

var extensionBatch = Batch{
	Brands: []string{
		"ABSOLUMENT PARFUMEUR", "ACCA KAPPA", "ACCENDIS", "ACQUA COLONIA",
		"ACQUA DI GENOVA", "ACQUA DI MONACO", "ACQUA DI PARISIS",
		"ACQUA DI PORTOFINO", "ADAM LEVINE", "ADRIENNE VITTADINI",
		"AEDES DE VENUSTAS", "AERIN", "AFFINESSENCE", "AGATHA", "AGONIST",
		"AIGNER", "AL AMBRA", "AL JAZEERA PERFUMES", "AL KIMIYA",
		"AL-REHAB", "AL WATANIAH", "ALAIA", "ALAIN DELON", "ALAN BRAY",
		"ALESSANDRO DELL'ACQUA", "ALFRED DUNHILL", "ALFRED SUNG",
		"ALHAMBRA", "ALLA PUGACHEVA", "ALYSON OLDOINI", "ALYSSA ASHLEY",
		"AMATI", "AMBASSADOR", "AMERICAN EAGLE", "ANDREA MAACK",
		"ANDY WARHOL", "ANGELA CIAMPAGNA", "ANIMALE", "ANNAYAKE",
		"ANNICK GOUTAL", "ANTONIO FUSCO", "ANTONIO PUIG",
		"ANTONIO VISCONTI", "APPLE", "APRIL AROMATICS", "AQUOLINA",
		"ARD AL ZAAFARAN", "ARIANA GRANDE", "AROME", "ARROGANCE",
		"ART DE PARFUM", "ARTE OLFATTO", "ASDAAF", "ATELIER FLOU",
		"ATELIER REBUL", "ATELIER VERSACE", "AUBUSSON", "AVEC DEFI",
		"UNITOP",
	},
	Synonyms: map[string][]string{
		"AL-REHAB":        {"al rehab"},
		"ALFRED DUNHILL":  {"alfred dunhill"},
		"ALLA PUGACHEVA":  {"alla pugachova"},
		"ALYSON OLDOINI":  {"alyson"},
		"ARD AL ZAAFARAN": {"ard zaafaran"},
		"AROME":           {"arome arthes"},
	},
}

// DefaultDictionary собирает штатный справочник из всех партий.
func DefaultDictionary() *Dictionary {
	d, err := NewDictionaryBuilder().
		Add(baseBatch).
		Add(extensionBatch).
		Build()
	if err != nil {
		// партии курируются вместе с кодом; конфликт алиасов — ошибка
		// сборки данных, работать с таким справочником нельзя
		panic(err)
	}
	return d
}
