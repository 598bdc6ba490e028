package render

// Static Greek copy for the fixed document sections.

const defaultTitle = "Πρόταση Λογισμικού Εμπορικής Διαχείρισης"

const defaultIntroBody = "Αξιότιμε συνεργάτη,\n" +
	"σε συνέχεια της επικοινωνίας μας, σας αποστέλλουμε την πρόταση της εταιρίας μας σχετικά με το " +
	"λογισμικό εμπορικής διαχείρισης. Η S-Team έχει πάντοτε ως γνώμονα την καλύτερη και την αρτιότερη κάλυψη των " +
	"αναγκών της επιχείρησής σας. Διαθέτει πολυετή εμπειρία, βαθιά τεχνογνωσία και υψηλή εξειδίκευση σε προϊόντα " +
	"και λύσεις μηχανογράφησης επιχειρήσεων. Η αποδεδειγμένη ικανοποίηση των πελατών της εταιρίας είναι " +
	"στοιχεία που χαρακτηρίζουν την S-Team. Συνημμένα θα βρείτε τους όρους και τις προϋποθέσεις της προσφοράς " +
	"μας. Παραμένουμε στη διάθεση σας για οποιαδήποτε συμπληρωματική πληροφορία.\n\n" +
	"Με εκτίμηση,\nΤμήμα Υποστήριξης Πελατών."

var techPointsGeneral = []string{
	"UpSales. Το εμπορικό πρόγραμμα διαχείρισης κάθε επιχείρησης που συνδυάζει άψογα ποιότητα - τιμή - ευκολία χρήσης.",
	"Μία εμπορική εφαρμογή προσιτή σε κάθε επιχείρηση, λόγω χαμηλού κόστους απόκτησης και ετήσιας συντήρησης.",
	"Εφαρμογή φιλική σε κάθε χρήστη ανεξαρτήτως επιπέδου γνώσεων Η/Υ.",
	"Σχεδιασμένο έτσι ώστε ο χρήστης με ελάχιστες κινήσεις να επεξεργάζεται όλες τις λειτουργίες του προγράμματος στο λιγότερο δυνατό χρόνο.",
	"Τεχνολογία αιχμής. Η ανάπτυξή του έγινε με τα πλέον σύγχρονα εργαλεία προγραμματισμού, προσφέροντας ευελιξία και εφαρμογή στις ανάγκες κάθε επιχείρησης ξεχωριστά.",
	"Το πλήρως στελεχωμένο τμήμα ανάπτυξης λογισμικού της S-Team εγγυάται την άψογη υποστήριξη της επιχείρησης σε σύγχρονες και μελλοντικές προκλήσεις.",
}

var techPointsBaseEdition = []string{
	"Διαχείριση πελατών-προμηθευτών, ειδών-υπηρεσιών, αποθήκης, πωλήσεων (λιανικής & χονδρικής) - αγορών, εισπράξεων-πληρωμών-αξιογράφων.",
	"Μεταφορά εγγραφών πωλήσεων-αγορών- χρηματοοικονομικών σε πλήθος λογιστικών εφαρμογών μειώνοντας τον χρόνο επεξεργασίας των λογιστών και ελαχιστοποιώντας την πιθανότητα ανθρώπινου σφάλματος στην καταχώρηση των στοιχείων.",
	"Εξαγωγή αρχείων Μηνιαίων Καταστάσεων Πελατών Προμηθευτών και Συναλλαγών έτοιμα για αποστολή στην Γενική Γραμματεία Πληροφοριακών Συστημάτων.",
	"Δυνατότητα απευθείας σύνδεσης με πλήθος φορολογικών μηχανισμών για την έκδοση λιανικών αποδείξεων.",
	"Πληθώρα εκτυπώσεων για είδη, πελάτες-προμηθευτές, πωλήσεων, αγορών, χρηματοοικονομικών, καθώς επίσης ένας νέος επαναστατικός τρόπος εκτύπωσης με φίλτρα ώστε να βγάζετε ό,τι αποτελέσματα θέλετε σύμφωνα με τις ανάγκες σας.",
}

const vatExcludedNote = "Στις παραπάνω τιμές ΔΕΝ συμπεριλαμβάνεται Φ.Π.A."

const baseEditionItems = "Εμπορικό UpSales, περιλαμβάνει:\n" +
	"• Άδεια Χρήσης Λογισμικού για ένα έτος\n" +
	"• Εγκατάσταση & Παραμετροποίηση προγράμματος\n" +
	"• Εκπαίδευση"

const annualLicenseDesc = "Ετήσια Άδεια Χρήσης Λογισμικού που περιλαμβάνει νέες εκδόσεις (Μετά το 1ο έτος)"

const annualLicensePrice = "120€ / Εγκατάσταση"

const servicesIntro = "Λόγω των διαφορετικών αναγκών και απαιτήσεων κάθε επιχείρησης, προτείνεται η Προαγορά Ωρών Υποστήριξης, καθώς παρέχεται Παραμετροποίηση και Τεχνική Υποστήριξη."

const supportContractDesc = "Συμβόλαιο Τηλεφωνικής & Απομακρυσμένης Υποστήριξης"

var supportAdvantages = []string{
	"ΔΕΝ έχουν ημερολογιακό περιορισμό",
	"Έχουν χαμηλό κόστος ώρας",
	"Υποστήριξη όταν τη χρειάζεστε",
	"Λήγουν μόνο όταν εξαντληθούν οι ώρες προαγοράς",
	"Καλύπτει Παραμετροποίηση, Εκπαίδευση, Επίσκεψη Τεχνικού, Remote Υποστήριξη",
	"Ελάχιστη χρέωση 10λεπτά ανά τηλεφωνική κλήση.",
	"Χρέωση πραγματικού χρόνου υποστήριξης.",
}

// e-invoicing table header labels, in column order.
var eInvoicingHeaders = []string{
	"Πακέτο EINVOICING\n(ετήσια συνδρομή)",
	"Αξία Πελάτη",
	"Μέγιστος Αριθμός\nΑποδείξεων Λιανικής",
	"Μέγιστος Αριθμός\nΠαραστατικών Χονδρικής",
	"Μέγιστος Αριθμός\nΠαραστατικών B2G",
	"Τιμή ανά\nΠαραστατικό Λιανικής",
	"Τιμή ανά\nΠαραστατικό Χονδρικής",
	"Τιμή ανά\nΠαραστατικό B2G",
	"-50% ΠΡΟΣΦΟΡΑ\nΕΩΣ 20/03/25",
}

// relative column weights of the e-invoicing table, scaled to the page width.
var eInvoicingWeights = []float64{35, 20, 25, 25, 25, 20, 20, 20, 25}

type termsSection struct {
	Title    string
	Bulleted bool
	Points   []string
}

var termsSections = []termsSection{
	{Title: "Τι καλύπτουν τα Συμβόλαια Προαγοράς Ωρών", Points: []string{
		"1. Τηλεφωνική & Remote Υποστήριξη Δευτ-Παρ 09:00-17:00.",
		"2. Άμεση υποστήριξη ή σας καλούμε εμείς το αργότερο σε 30λεπτά από την κλήση.",
		"3. Επίσκεψη στο χώρο του πελάτη κατόπιν ραντεβού.",
		"4. Θέματα που σχετίζονται με τις εφαρμογές και την σωστή λειτουργία των Η/Υ ή Servers – Hardware, Printer-Δίκτυο και μπορούν να επιλυθούν μέσω Remote Support.",
	}},
	{Title: "Σημειώσεις", Points: []string{
		"1. Για υποστήριξη έκτος ωρών εργασίας, ισχύουν οι επιπλέον επιβαρύνσεις: α) 50% από 17:00 ως και 21:00 β) 100% από 21:00 ως και 24:00, για Σάββατο & Κυριακή καθώς και επίσημες αργίες γ) Δευτέρα-Κυριακή δεν λειτουργεί το Support από 00:01 – 09:00",
		"2. H τιμολόγηση των ωρών προαγοράς γίνεται με την παραγγελία. Για να ισχύσουν τα παραπάνω πακέτα προαγοράς ωρών, θα πρέπει να έχει προηγηθεί πλήρης εξόφληση του τιμολογίου.",
		"3. Στα παραπάνω δεν περιλαμβάνεται περαιτέρω ανάπτυξη της εφαρμογής. Τα κόστη προκύπτουν κατόπιν ανάλυσης των απαιτήσεων του πελάτη.",
		"4. Οι εκτός έδρας εργασίες επιβαρύνονται με επιπλέον κόστος 0,60€/χλμ + διόδια + έξοδα διαμονής.",
	}},
	{Title: "Ειδικοί Όροι", Bulleted: true, Points: []string{
		"Όλες οι εργασίες θα γίνουν μέσω απομακρυσμένης πρόσβασης",
		"Η εκπαίδευση γίνεται σε ένα και μόνο άτομο.",
	}},
	{Title: "Τιμές", Bulleted: true, Points: []string{
		"Οι τιμές του παρόντος εγγράφου δίνονται σε ευρώ (€) και δεν περιλαμβάνουν Φ.Π.A.",
		"Οι τιμές περιλαμβάνουν μεταφορικά έξοδα για παράδοση σε χώρο που θα μας υποδείξετε, εντός των ορίων του νομού Αττικής. Για αποστολές εκτός νομού Αττικής το κόστος των μεταφορικών επιβαρύνει τον πελάτη.",
	}},
	{Title: "Τρόποι πληρωμής", Bulleted: true, Points: []string{
		"Προκαταβολή του 50% με κατάθεση σε τραπεζικό λογαριασμό της εταιρείας και το υπόλοιπο 50% με την ολοκλήρωση των εργασιών.",
	}},
}

var bankAccounts = [][3]string{
	{"Πειραιώς", "GR45 0172 1830 00 51 8307 0951 644", "S-Team OE"},
	{"Eurobank", "GR60 0260 3530 00 08 6020 0518 561", "S-Team OE"},
}

var termsDelivery = termsSection{Title: "Χρόνος Παράδοσης", Bulleted: true, Points: []string{
	"Εντός 10 - 15 ημερών από την έγγραφη ανάθεση της παραγγελίας σας.",
	"Ο χρόνος παράδοσης του εξοπλισμού μπορεί να διαφοροποιείται, ανάλογα με τη διαθεσιμότητα των προϊόντων από τον κατασκευαστή.",
}}

const acceptanceInstruction = "Για την αποδοχή της παραπάνω προσφοράς, παρακαλείσθε να επιστρέψετε υπογεγραμμένη και σφραγισμένη την παρούσα σελίδα."

// fixed vendor contact block on the acceptance page
const (
	vendorName      = "S TEAM"
	vendorPhone     = "2108040424"
	vendorEmail     = "acc@s-team.gr"
	vendorAttention = "Τμήμα Πωλήσεων"
)
